package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/text/transform"

	"github.com/dshills/spanseq/cursor"
	"github.com/dshills/spanseq/luamod"
	"github.com/dshills/spanseq/seq"
	"github.com/dshills/spanseq/span"
	"github.com/dshills/spanseq/textspan"
)

func (a *app) findCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find NEEDLE",
		Short: "Print the byte index of the first occurrence of NEEDLE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input()
			if err != nil {
				return err
			}
			pos, ok := seq.FindString(text, args[0])
			a.logger.Debug("find", "needle", args[0], "found", ok, "pos", pos)
			if !ok {
				return fmt.Errorf("find %q: %w", args[0], errAbsent)
			}
			fmt.Fprintln(a.out, pos)
			return nil
		},
	}
}

func (a *app) betweenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "between OPEN CLOSE",
		Short: "Print the text between the first OPEN and the CLOSE after it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input()
			if err != nil {
				return err
			}
			inner, ok := seq.BetweenString(text, args[0], args[1])
			a.logger.Debug("between", "open", args[0], "close", args[1], "found", ok)
			if !ok {
				return fmt.Errorf("between %q and %q: %w", args[0], args[1], errAbsent)
			}
			fmt.Fprintln(a.out, inner)
			return nil
		},
	}
}

func (a *app) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATTERN",
		Short: "Copy the input with every occurrence of PATTERN removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := seq.NewRemoveTransformer([]byte(args[0]))
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}

			if a.hasText {
				out, _, err := transform.String(t, a.text)
				if err != nil {
					return fmt.Errorf("remove: %w", err)
				}
				_, err = io.WriteString(a.out, out)
				return err
			}

			n, err := io.Copy(a.out, transform.NewReader(a.in, t))
			a.logger.Debug("remove", "pattern", args[0], "written", n)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			return nil
		},
	}
}

func (a *app) charsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chars",
		Short: "Print the byte span of every character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input()
			if err != nil {
				return err
			}

			graphemes, _ := cmd.Flags().GetBool("graphemes")
			if graphemes {
				for sp := range textspan.Graphemes(text) {
					a.printSpan(sp, sp.In(text))
				}
				return nil
			}

			for i := 0; i < len(text); {
				sp, ok := textspan.CharSpan(text, i)
				if !ok {
					return fmt.Errorf("chars: no character at byte %d", i)
				}
				a.printSpan(sp, sp.In(text))
				i = sp.End
			}
			return nil
		},
	}
	cmd.Flags().Bool("graphemes", false, "Print grapheme clusters instead of characters")
	return cmd
}

func (a *app) splitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split SEP",
		Short: "Split the input on a single-character separator",
		Long:  "Split the input on SEP and print each part as a quoted string, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(args[0]) != 1 {
				return fmt.Errorf("split: separator %q must be a single character", args[0])
			}
			sep, _ := utf8.DecodeRuneInString(args[0])

			text, err := a.input()
			if err != nil {
				return err
			}

			inclusive, _ := cmd.Flags().GetBool("inclusive")
			split := cursor.SplitString
			if inclusive {
				split = cursor.SplitStringInclusive
			}

			parts := 0
			for part := range split(text, func(r rune) bool { return r == sep }) {
				fmt.Fprintf(a.out, "%q\n", part)
				parts++
			}
			a.logger.Debug("split", "sep", args[0], "inclusive", inclusive, "parts", parts)
			return nil
		},
	}
	cmd.Flags().Bool("inclusive", false, "Keep each separator at the end of its part")
	return cmd
}

func (a *app) jsonSpanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "json-span PATH",
		Short: "Print the byte span of the JSON value at PATH",
		Long:  "Print the byte span of the JSON value at PATH. Paths containing '#' print one span per match.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.input()
			if err != nil {
				return err
			}
			path := args[0]

			if strings.Contains(path, "#") {
				found := 0
				for sp := range textspan.JSONSpans(doc, path) {
					a.printSpan(sp, sp.In(doc))
					found++
				}
				if found == 0 {
					return fmt.Errorf("json-span %q: %w", path, errAbsent)
				}
				return nil
			}

			sp, ok := textspan.JSONSpan(doc, path)
			if !ok {
				return fmt.Errorf("json-span %q: %w", path, errAbsent)
			}
			a.printSpan(sp, sp.In(doc))
			return nil
		},
	}
}

func (a *app) luaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lua SCRIPT",
		Short: "Run a Lua script with the spanseq module loaded",
		Long: "Run a Lua script with the spanseq functions bound to the global _spanseq " +
			"and the input text bound to the global input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input()
			if err != nil {
				return err
			}

			L := lua.NewState()
			defer L.Close()

			mod := luamod.New()
			if err := mod.Register(L); err != nil {
				return fmt.Errorf("register %s: %w", mod.Name(), err)
			}
			mod.Preload(L)
			L.SetGlobal("input", lua.LString(text))
			L.SetGlobal("print", L.NewFunction(a.luaPrint))

			a.logger.Debug("running script", "path", args[0])
			if err := L.DoFile(args[0]); err != nil {
				return fmt.Errorf("lua: %w", err)
			}
			return nil
		},
	}
}

// luaPrint replaces Lua's print so script output goes to the command's
// output stream.
func (a *app) luaPrint(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(a.out, strings.Join(parts, "\t"))
	return 0
}

func (a *app) printSpan(sp span.Span, text string) {
	fmt.Fprintf(a.out, "%s\t%s\n", sp, text)
}
