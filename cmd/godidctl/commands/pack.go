package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openflightid/godid/internal/odid"
)

func packCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <hex> [hex...]",
		Short: "Combine up to 10 encoded 25-byte messages into a message-pack frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			messages := make([][odid.MessageSize]byte, 0, len(args))
			for _, a := range args {
				buf, err := parseMessageHex(a)
				if err != nil {
					return err
				}
				messages = append(messages, buf)
			}

			packBuf, err := odid.EncodePack(messages)
			if err != nil {
				return fmt.Errorf("encode pack: %w", err)
			}

			fmt.Println(hex.EncodeToString(packBuf[:]))
			return nil
		},
	}
	cmd.AddCommand(unpackCmd())
	return cmd
}

func unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Split a message-pack frame back into its constituent messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("parse hex: %w", err)
			}
			if len(raw) != odid.PackBufferSize {
				return fmt.Errorf("%w: got %d bytes, want %d", odid.ErrInvalidSize, len(raw), odid.PackBufferSize)
			}
			var packBuf odid.PackBuffer
			copy(packBuf[:], raw)

			messages, err := odid.DecodePack(packBuf)
			if err != nil {
				return fmt.Errorf("decode pack: %w", err)
			}

			for i, m := range messages {
				fmt.Printf("%d: %s\n", i, hex.EncodeToString(m[:]))
			}
			return nil
		},
	}
}
