package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openflightid/godid/internal/odid"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a 25-byte hex message, auto-detecting its type from the first nibble",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			buf, err := parseMessageHex(args[0])
			if err != nil {
				return err
			}

			msgType := odid.MessageTypeOf(buf)
			record, err := odid.DecodeByType(msgType, buf)
			if err != nil {
				return fmt.Errorf("decode %s: %w", msgType, err)
			}

			out, err := formatRecord(msgType.String(), record, outputFormat)
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
}

func parseMessageHex(s string) ([odid.MessageSize]byte, error) {
	var buf [odid.MessageSize]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return buf, fmt.Errorf("parse hex: %w", err)
	}
	if len(raw) != odid.MessageSize {
		return buf, fmt.Errorf("%w: got %d bytes, want %d", odid.ErrInvalidSize, len(raw), odid.MessageSize)
	}
	copy(buf[:], raw)
	return buf, nil
}
