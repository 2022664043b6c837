package odid_test

import (
	"errors"
	"testing"

	"github.com/openflightid/godid/internal/odid"
)

func TestPackStructure(t *testing.T) {
	t.Parallel()

	agg := odid.NewUASData()
	mustIngestFixtures(t, agg)

	messages, err := agg.EncodedMessages()
	if err != nil {
		t.Fatalf("EncodedMessages: %v", err)
	}
	if len(messages) != 5 {
		t.Fatalf("len(messages) = %d, want 5", len(messages))
	}

	buf, err := odid.EncodePack(messages)
	if err != nil {
		t.Fatalf("EncodePack: %v", err)
	}
	if buf[0] != 0xF0 || buf[1] != 25 || buf[2] != 5 {
		t.Errorf("header = [0x%02X, %d, %d], want [0xF0, 25, 5]", buf[0], buf[1], buf[2])
	}
}

func TestPackDecodeIngestsAllSlots(t *testing.T) {
	t.Parallel()

	src := odid.NewUASData()
	mustIngestFixtures(t, src)
	messages, err := src.EncodedMessages()
	if err != nil {
		t.Fatalf("EncodedMessages: %v", err)
	}
	buf, err := odid.EncodePack(messages)
	if err != nil {
		t.Fatalf("EncodePack: %v", err)
	}

	dst := odid.NewUASData()
	n, err := dst.IngestPack(buf)
	if err != nil {
		t.Fatalf("IngestPack: %v", err)
	}
	if n != 5 {
		t.Errorf("IngestPack ingested %d slots, want 5", n)
	}
	if !dst.LocationValid || !dst.SelfIDValid || !dst.SystemValid || !dst.OperatorIDValid {
		t.Errorf("not all single-valued slots valid after IngestPack")
	}
	if !dst.BasicIDValid[0] {
		t.Errorf("basic id slot 0 not valid after IngestPack")
	}
}

func TestEncodePackTooManyMessages(t *testing.T) {
	t.Parallel()

	messages := make([][odid.MessageSize]byte, odid.MaxPackMessages+1)
	if _, err := odid.EncodePack(messages); !errors.Is(err, odid.ErrTooManyMessages) {
		t.Errorf("EncodePack error = %v, want ErrTooManyMessages", err)
	}
}

func TestDecodePackInvalidSize(t *testing.T) {
	t.Parallel()

	var buf odid.PackBuffer
	buf[0] = 0xF0
	buf[1] = 24 // wrong
	buf[2] = 0
	if _, err := odid.DecodePack(buf); !errors.Is(err, odid.ErrInvalidSize) {
		t.Errorf("DecodePack error = %v, want ErrInvalidSize", err)
	}
}

// mustIngestFixtures populates agg with one of each of BasicID, Location,
// SelfID, System, and OperatorID (spec scenario 5's five-message fixture).
func mustIngestFixtures(t *testing.T, agg *odid.UASData) {
	t.Helper()

	basicID, err := odid.EncodeBasicID(odid.BasicIDData{IDType: odid.IDTypeSerialNumber, UAType: odid.UATypeRotorcraft, UASID: "SN123"})
	if err != nil {
		t.Fatalf("EncodeBasicID: %v", err)
	}
	location, err := odid.EncodeLocation(odid.LocationData{Status: odid.StatusAirborne})
	if err != nil {
		t.Fatalf("EncodeLocation: %v", err)
	}
	selfID, err := odid.EncodeSelfID(odid.SelfIDData{Description: "test flight"})
	if err != nil {
		t.Fatalf("EncodeSelfID: %v", err)
	}
	system, err := odid.EncodeSystem(odid.SystemData{})
	if err != nil {
		t.Fatalf("EncodeSystem: %v", err)
	}
	operatorID, err := odid.EncodeOperatorID(odid.OperatorIDData{OperatorID: "OP123"})
	if err != nil {
		t.Fatalf("EncodeOperatorID: %v", err)
	}

	for _, buf := range [][odid.MessageSize]byte{basicID, location, selfID, system, operatorID} {
		if _, err := agg.IngestMessage(buf); err != nil {
			t.Fatalf("IngestMessage: %v", err)
		}
	}
}
