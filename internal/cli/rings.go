package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/soleren/mandala/pkg/rings"
)

// ringDescriptions explains each built-in generator in one line.
// Generators registered by name only fall back to a generic label.
var ringDescriptions = map[string]string{
	"gates":     "Gate numbers with divider ticks between arcs",
	"hexagrams": "I Ching hexagram glyphs, one per gate",
	"names":     "Gate names, radially set and flipped on the far side",
	"lines":     "Line markers, six ticks per gate",
}

func describeRing(name string) string {
	if d, ok := ringDescriptions[name]; ok {
		return d
	}
	return "Custom ring generator"
}

// newRingsCmd creates the rings command, which lists the ring
// generators a manifest can reference by name.
func newRingsCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "rings",
		Short: "List the available ring generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runRingPicker()
			}

			rows := [][]string{}
			for _, name := range rings.Names() {
				rows = append(rows, []string{name, describeRing(name)})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Ring", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					if col == 0 {
						return lipgloss.NewStyle().Foreground(colorCyan)
					}
					return lipgloss.NewStyle().Foreground(colorWhite)
				})

			fmt.Println(t.Render())
			printNextStep("Reference a ring in a manifest", `[[rings]] name = "gates" inner = 430.0 outer = 480.0`)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a ring interactively")
	return cmd
}

// runRingPicker runs the interactive ring selector and prints a
// manifest snippet for the chosen ring.
func runRingPicker() error {
	model := NewRingListModel(rings.Names())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run ring picker: %w", err)
	}

	m, ok := final.(RingListModel)
	if !ok || m.Selected == "" {
		return nil
	}

	printSuccess("Selected ring %q", m.Selected)
	fmt.Printf("\n[[rings]]\nname = %q\ninner = 400.0\nouter = 480.0\n", m.Selected)
	return nil
}
