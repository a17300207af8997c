package core

import (
	"strconv"
	"strings"
)

// Fingerprint control bytes. These values are fixed by the PM42 protocol;
// the printer rejects anything else.
const (
	ctrlSTX = "\x02" // start of command
	ctrlETX = "\x03" // end of command
	ctrlESC = "\x1b" // command prefix for field operations
	ctrlLF  = "\x0a" // separates a field name from its value
	ctrlUS  = "\x1f" // precedes the copy count of a block
	ctrlETB = "\x17" // terminates a block
	ctrlCAN = "\x18" // clears the field buffer
	ctrlSI  = "\x0f" // printer setup prefix
)

// cmd wraps a command body in the STX/ETX frame the printer expects.
func cmd(body string) string {
	return ctrlSTX + body + ctrlETX
}

// fieldAssign builds the ESC F"NAME" LF value command that loads one field.
func fieldAssign(name, value string) string {
	return cmd(ctrlESC + `F"` + name + `"` + ctrlLF + value)
}

// headerCommands returns the fixed document preamble: printer setup, label
// geometry, field declarations for the given layout, and the run command.
// Offsets and sizes come from the PM42 label stock in production.
func headerCommands(layout Layout) []string {
	cmds := []string{
		cmd(ctrlSI + "g1,420"),
		cmd(ctrlSI + "d5"),
		cmd(ctrlSI + "s50"),
		cmd(ctrlESC + "P;"),
		cmd("E1,1;A1,ETIQ2J;"),
		cmd("L39;D0;"),
		cmd("B0,BR0;o60,210;f1;c6,0;h50;w1;r0;i1;d0,12"),
	}
	if layout == LayoutTriple {
		cmds = append(cmds,
			cmd("B1,BR1;o60,480;f1;c6,0;h50;w1;r0;i1;d0,12"),
			cmd("B2,BR2;o60,730;f1;c6,0;h50;w1;r0;i1;d0,12"),
		)
	}
	cmds = append(cmds,
		cmd("H3,TX3;o10,260;f1;c25;h8;w7;d0,25;"),
		cmd("H4,TX4;o30,260;f1;c25;h8;w7;d0,25;"),
	)
	if layout == LayoutTriple {
		cmds = append(cmds,
			cmd("H5,TX5;o10,530;f1;c25;h8;w7;d0,25;"),
			cmd("H6,TX6;o30,530;f1;c25;h8;w7;d0,25;"),
			cmd("H7,TX7;o10,790;f1;c25;h8;w7;d0,25;"),
			cmd("H8,TX8;o30,790;f1;c25;h8;w7;d0,25;"),
		)
	}
	cmds = append(cmds, cmd("I0;o110,220;f1;c25;h12;w12;"))
	if layout == LayoutTriple {
		cmds = append(cmds,
			cmd("I1;o110,490;f1;c25;h12;w12;"),
			cmd("I2;o110,740;f1;c25;h12;w12;"),
		)
	}
	return append(cmds, cmd("R"))
}

// mainBlock returns the commands that print qty copies of one label. The
// triple layout loads the same code and text into all three positions.
func mainBlock(layout Layout, code, line1, line2 string, qty int) []string {
	cmds := []string{
		cmd(ctrlESC + "E1" + ctrlCAN),
		fieldAssign("BR0", code),
	}
	if layout == LayoutTriple {
		cmds = append(cmds,
			fieldAssign("BR1", code),
			fieldAssign("BR2", code),
		)
	}
	cmds = append(cmds,
		fieldAssign("TX3", line1),
		fieldAssign("TX4", line2),
	)
	if layout == LayoutTriple {
		cmds = append(cmds,
			fieldAssign("TX5", line1),
			fieldAssign("TX6", line2),
			fieldAssign("TX7", line1),
			fieldAssign("TX8", line2),
		)
	}
	return append(cmds,
		cmd(ctrlUS+strconv.Itoa(qty)),
		cmd(ctrlETB),
	)
}

// residualBlock returns the commands that print the final single label of a
// split run. Only the first position is loaded, so two of the three labels
// across the stock stay blank and the roll can be cut cleanly.
func residualBlock(code, line1, line2 string) []string {
	return []string{
		cmd(ctrlESC + "E1" + ctrlCAN),
		fieldAssign("BR0", code),
		fieldAssign("TX3", line1),
		fieldAssign("TX4", line2),
		cmd(ctrlUS + "1"),
		cmd(ctrlETB),
	}
}

// EncodeDocument renders records into the printer command stream described
// by the profile. The header is always emitted, so an empty record list
// yields a valid document that prints nothing.
//
// Records with quantity zero produce no blocks. Under PolicySplit a record
// with quantity above one becomes a main block for quantity-1 copies plus a
// residual block for the last label; quantity one is a single main block.
// Under PolicyExact every record is one main block with its full quantity.
func EncodeDocument(records []LabelRecord, profile FormatProfile) ([]byte, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	width := profile.textWidth()
	cmds := headerCommands(profile.Layout)

	for _, rec := range records {
		if rec.Quantity <= 0 {
			continue
		}
		line1, line2 := WrapDescription(rec.Description, width)

		switch profile.QuantityPolicy {
		case PolicySplit:
			if rec.Quantity > 1 {
				cmds = append(cmds, mainBlock(profile.Layout, rec.Code, line1, line2, rec.Quantity-1)...)
				cmds = append(cmds, residualBlock(rec.Code, line1, line2)...)
			} else {
				cmds = append(cmds, mainBlock(profile.Layout, rec.Code, line1, line2, 1)...)
			}
		case PolicyExact:
			cmds = append(cmds, mainBlock(profile.Layout, rec.Code, line1, line2, rec.Quantity)...)
		}
	}

	sep := ""
	if profile.LineTermination == TermCRLF {
		sep = "\r\n"
	}
	return []byte(strings.Join(cmds, sep)), nil
}
