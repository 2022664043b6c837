package fleet_test

import (
	"testing"
	"time"

	"github.com/openflightid/godid/internal/fleet"
	"github.com/openflightid/godid/internal/odid"
)

func encodeBasicID(t *testing.T, idType odid.IDType, uasID string) [odid.MessageSize]byte {
	t.Helper()
	buf, err := odid.EncodeBasicID(odid.BasicIDData{IDType: idType, UAType: odid.UATypeRotorcraft, UASID: uasID})
	if err != nil {
		t.Fatalf("EncodeBasicID: %v", err)
	}
	return buf
}

func TestTrackCreatesAndReuses(t *testing.T) {
	t.Parallel()

	tr := fleet.New(time.Minute, time.Minute, nil)

	a := tr.Track("AC-1")
	b := tr.Track("AC-1")
	if a != b {
		t.Error("Track() returned a different aggregate for the same key")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestIngestAndGet(t *testing.T) {
	t.Parallel()

	tr := fleet.New(time.Minute, time.Minute, nil)
	buf := encodeBasicID(t, odid.IDTypeSerialNumber, "1584070150AB1234")

	msgType, err := tr.Ingest("AC-1", buf)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if msgType != odid.MessageTypeBasicID {
		t.Errorf("Ingest() message type = %v, want BasicID", msgType)
	}

	data, err := tr.Get("AC-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil {
		t.Fatal("Get() returned nil aggregate")
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	tr := fleet.New(time.Minute, time.Minute, nil)
	if _, err := tr.Get("missing"); err == nil {
		t.Error("Get() on untracked key returned nil error")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tr := fleet.New(time.Minute, time.Minute, nil)
	tr.Track("AC-1")
	tr.Remove("AC-1")

	if _, err := tr.Get("AC-1"); err == nil {
		t.Error("Get() after Remove() returned nil error")
	}
	if tr.Len() != 0 {
		t.Errorf("Len() after Remove() = %d, want 0", tr.Len())
	}
}

func TestSnapshotCoversAllTracked(t *testing.T) {
	t.Parallel()

	tr := fleet.New(time.Minute, time.Minute, nil)
	tr.Track("AC-1")
	tr.Track("AC-2")

	snaps := tr.Snapshot()
	if len(snaps) != 2 {
		t.Fatalf("Snapshot() len = %d, want 2", len(snaps))
	}
	if _, ok := snaps["AC-1"]; !ok {
		t.Errorf("Snapshot() missing AC-1")
	}
	if _, ok := snaps["AC-2"]; !ok {
		t.Errorf("Snapshot() missing AC-2")
	}
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	tr := fleet.New(20*time.Millisecond, 10*time.Millisecond, nil)
	tr.Track("AC-1")

	time.Sleep(100 * time.Millisecond)

	if _, err := tr.Get("AC-1"); err == nil {
		t.Error("Get() after TTL expiry returned nil error, want ErrNotFound")
	}
}
