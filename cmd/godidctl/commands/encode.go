package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openflightid/godid/internal/odid"
)

// errUnknownMessageKind is returned when a subcommand names a message kind godidctl does not recognize.
var errUnknownMessageKind = errors.New("unknown message kind")

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <basicid|location|authentication|selfid|system|operatorid>",
		Short: "Encode a JSON record (read from stdin) into a 25-byte hex message",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			buf, err := encodeByKind(args[0], input)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(buf[:]))
			return nil
		},
	}
	return cmd
}

func encodeByKind(kind string, jsonInput []byte) ([odid.MessageSize]byte, error) {
	switch kind {
	case "basicid":
		var d odid.BasicIDData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse basicid JSON: %w", err)
		}
		return odid.EncodeBasicID(d)
	case "location":
		var d odid.LocationData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse location JSON: %w", err)
		}
		return odid.EncodeLocation(d)
	case "authentication":
		var d odid.AuthenticationData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse authentication JSON: %w", err)
		}
		return odid.EncodeAuthentication(d)
	case "selfid":
		var d odid.SelfIDData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse selfid JSON: %w", err)
		}
		return odid.EncodeSelfID(d)
	case "system":
		var d odid.SystemData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse system JSON: %w", err)
		}
		return odid.EncodeSystem(d)
	case "operatorid":
		var d odid.OperatorIDData
		if err := json.Unmarshal(jsonInput, &d); err != nil {
			return [odid.MessageSize]byte{}, fmt.Errorf("parse operatorid JSON: %w", err)
		}
		return odid.EncodeOperatorID(d)
	default:
		return [odid.MessageSize]byte{}, fmt.Errorf("%w: %q", errUnknownMessageKind, kind)
	}
}
