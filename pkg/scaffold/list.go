package scaffold

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/new/pkg/recipe"
)

// ListRecipes writes the recipes directory and the state of every recipe file to w.
func (s *realScaffolder) ListRecipes(w io.Writer) error {
	entries, err := s.deps.Recipes.List()
	if err != nil {
		return err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entryName(entries[i]) < entryName(entries[j])
	})

	renderer := lipgloss.NewRenderer(w)
	styles := listStyles{
		header: renderer.NewStyle().Bold(true),
		valid:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		broken: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		detail: renderer.NewStyle().Faint(true),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", styles.header.Render("Recipes directory:"), s.deps.Recipes.Dir())

	if len(entries) == 0 {
		b.WriteString("No templates installed\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, entry := range entries {
		writeEntry(&b, styles, entry)
	}

	_, err = io.WriteString(w, b.String())
	return err
}

type listStyles struct {
	header lipgloss.Style
	valid  lipgloss.Style
	broken lipgloss.Style
	detail lipgloss.Style
}

func writeEntry(b *strings.Builder, styles listStyles, entry recipe.Entry) {
	if entry.Err == nil {
		fmt.Fprintf(b, "%s\n", styles.valid.Render("✅ "+entry.Recipe.Name))
		return
	}

	state := "unreadable"
	if recipe.IsInvalid(entry.Err) {
		state = "invalid"
	}
	fmt.Fprintf(b, "%s\n", styles.broken.Render(fmt.Sprintf("❌ %s (%s)", fileStem(entry.Path), state)))

	causes := []error{entry.Err}
	var entryErr *recipe.EntryError
	if errors.As(entry.Err, &entryErr) {
		causes = entryErr.Causes
	}
	for _, cause := range causes {
		for _, line := range strings.Split(strings.TrimSpace(cause.Error()), "\n") {
			fmt.Fprintf(b, "  - %s\n", styles.detail.Render(line))
		}
	}
}

// entryName is the recipe name, or the file stem when the file is not a usable recipe.
func entryName(entry recipe.Entry) string {
	if entry.Err == nil && entry.Recipe != nil {
		return entry.Recipe.Name
	}
	return fileStem(entry.Path)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}
