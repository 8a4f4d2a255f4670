package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/bst"
)

func newBSTCmd(a *app) *cobra.Command {
	var (
		kind     string
		deletes  []string
		rangeArg string
	)

	cmd := &cobra.Command{
		Use:   "bst [values...]",
		Short: "Build a binary search tree from values and report on it",
		Long: "Insert every value in order, apply --delete, then print the three traversals,\n" +
			"an optional --range query, the statistics and the tree diagram.",
		Example: "  dsakit bst 50 30 70 20 40 60 80 --delete 20 --delete 30 --range 35:75",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("kind") {
				kind = a.cfg.BST.Kind
			}
			s := newTreeSession(kind, cmd.OutOrStdout(), a.log)

			for _, raw := range args {
				if err := s.insert(raw); err != nil {
					return err
				}
			}
			for _, raw := range deletes {
				if err := s.delete(raw); err != nil {
					return err
				}
			}

			s.printTraversals()
			if rangeArg != "" {
				lo, hi, err := parseRange(rangeArg)
				if err != nil {
					return err
				}
				if err = s.findRange(lo, hi); err != nil {
					return err
				}
			}
			s.printStats()
			s.printTree()

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "auto", "value kind: auto, int, float or string")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "value to delete after inserting (repeatable)")
	cmd.Flags().StringVar(&rangeArg, "range", "", "report keys in low:high (inclusive)")

	cmd.AddCommand(newBSTShellCmd(a))

	return cmd
}

func newBSTShellCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive binary search tree shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("kind") {
				kind = a.cfg.BST.Kind
			}
			s := newTreeSession(kind, cmd.OutOrStdout(), a.log)

			return s.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "auto", "value kind: auto, int, float or string")

	return cmd
}

// treeSession owns one dynamic tree and prints results of operations on it.
type treeSession struct {
	kind string
	tree *bst.Tree[any]
	out  io.Writer
	log  zerolog.Logger
}

func newTreeSession(kind string, out io.Writer, log zerolog.Logger) *treeSession {
	return &treeSession{kind: kind, tree: bst.NewDynamic(), out: out, log: log}
}

const shellHelp = `commands:
  insert|add <v>...     insert values
  delete|del <v>...     delete values
  search|find <v>       look a value up
  inorder | preorder | postorder
  range <low> <high>    keys in [low, high]
  height | balanced | stats | show
  clear                 remove every key
  help                  this text
  quit|exit             leave the shell
`

// run reads commands line by line until EOF or quit. Command errors are printed
// and the loop keeps going; only read errors end the session with an error.
func (s *treeSession) run(in io.Reader) error {
	fmt.Fprintf(s.out, "BST shell (%s values). Type help for commands.\n", s.kind)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "bst> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		quit, err := s.exec(sc.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			s.log.Debug().Err(err).Str("line", sc.Text()).Msg("shell command failed")
		}
		if quit {
			return nil
		}
	}
}

// exec runs one shell line. It reports quit=true for quit/exit.
func (s *treeSession) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	needArgs := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s needs %d value(s)", verb, n)
		}
		return nil
	}

	switch verb {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "insert", "add":
		if err := needArgs(1); err != nil {
			return false, err
		}
		for _, raw := range args {
			if err := s.insert(raw); err != nil {
				return false, err
			}
		}
	case "delete", "del", "remove":
		if err := needArgs(1); err != nil {
			return false, err
		}
		for _, raw := range args {
			if err := s.delete(raw); err != nil {
				return false, err
			}
		}
	case "search", "find":
		if err := needArgs(1); err != nil {
			return false, err
		}
		return false, s.search(args[0])
	case "inorder":
		s.printOrder(bst.InOrder)
	case "preorder":
		s.printOrder(bst.PreOrder)
	case "postorder":
		s.printOrder(bst.PostOrder)
	case "range":
		if err := needArgs(2); err != nil {
			return false, err
		}
		return false, s.findRange(args[0], args[1])
	case "height":
		fmt.Fprintf(s.out, "height: %d\n", s.tree.Height())
	case "balanced":
		fmt.Fprintf(s.out, "balanced: %t\n", s.tree.IsBalanced())
	case "stats":
		s.printStats()
	case "show", "visualize":
		s.printTree()
	case "clear":
		s.tree.Clear()
		fmt.Fprintln(s.out, "tree cleared")
	default:
		return false, fmt.Errorf("unknown command %q (type help)", verb)
	}

	return false, nil
}

func (s *treeSession) parse(raw string) (any, error) {
	return parseAs(s.kind, raw)
}

func (s *treeSession) insert(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	inserted, err := s.tree.Insert(v)
	if err != nil {
		return mismatch(err, v)
	}
	if inserted {
		fmt.Fprintf(s.out, "inserted %v\n", v)
	} else {
		fmt.Fprintf(s.out, "%v already exists\n", v)
	}
	s.log.Debug().Interface("key", v).Bool("inserted", inserted).Int("size", s.tree.Size()).Msg("insert")

	return nil
}

func (s *treeSession) delete(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	removed, err := s.tree.Delete(v)
	if err != nil {
		return mismatch(err, v)
	}
	if removed {
		fmt.Fprintf(s.out, "deleted %v\n", v)
	} else {
		fmt.Fprintf(s.out, "%v not found\n", v)
	}
	s.log.Debug().Interface("key", v).Bool("removed", removed).Int("size", s.tree.Size()).Msg("delete")

	return nil
}

func (s *treeSession) search(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	found, err := s.tree.Search(v)
	if err != nil {
		return mismatch(err, v)
	}
	if found {
		fmt.Fprintf(s.out, "found %v\n", v)
	} else {
		fmt.Fprintf(s.out, "%v not found\n", v)
	}

	return nil
}

func (s *treeSession) findRange(rawLo, rawHi string) error {
	lo, err := s.parse(rawLo)
	if err != nil {
		return err
	}
	hi, err := s.parse(rawHi)
	if err != nil {
		return err
	}
	keys, err := s.tree.FindRange(lo, hi)
	if err != nil {
		return mismatch(err, lo)
	}
	fmt.Fprintf(s.out, "range [%v, %v]: %v\n", lo, hi, keys)

	return nil
}

func (s *treeSession) printOrder(order bst.Order) {
	keys, err := s.tree.Traverse(order)
	if err != nil {
		// Only the three known orders are ever passed in.
		panic(err)
	}
	fmt.Fprintf(s.out, "%-11s %v\n", order.String()+":", keys)
}

func (s *treeSession) printTraversals() {
	for _, o := range []bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder} {
		s.printOrder(o)
	}
}

func (s *treeSession) printStats() {
	st := s.tree.Statistics()
	fmt.Fprintf(s.out, "size=%d height=%d operations=%d balanced=%t", st.Size, st.Height, st.OperationCount, st.IsBalanced)
	if st.HasMinMax {
		fmt.Fprintf(s.out, " min=%v max=%v", st.Min, st.Max)
	}
	fmt.Fprintln(s.out)
}

func (s *treeSession) printTree() {
	fmt.Fprint(s.out, s.tree.Visualize())
}

// mismatch rewords ErrTypeMismatch for people typing values by hand.
func mismatch(err error, v any) error {
	if errors.Is(err, bst.ErrTypeMismatch) {
		return fmt.Errorf("%v cannot be compared with the keys already in the tree: %w", v, err)
	}

	return err
}
