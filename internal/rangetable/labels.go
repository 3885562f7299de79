package rangetable

import (
	"strconv"
	"strings"
)

// CustomLabelPrefix is the style-class prefix for user-added bands. Bands
// shipped with the game keep their original style classes; only inserted
// bands get generated ones.
const CustomLabelPrefix = "attribute-colour-custom-"

// AllocateLabel generates a fresh custom label for an inserted band. It takes
// one past the highest numeric suffix among existing custom labels (labels
// that do not match the pattern contribute 0) and bumps further if the
// candidate somehow collides.
func AllocateLabel(existing []string) string {
	maxCustom := 0
	taken := make(map[string]struct{}, len(existing))
	for _, label := range existing {
		taken[label] = struct{}{}
		rest, ok := strings.CutPrefix(label, CustomLabelPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > maxCustom {
			maxCustom = n
		}
	}

	for n := maxCustom + 1; ; n++ {
		candidate := CustomLabelPrefix + strconv.Itoa(n)
		if _, dup := taken[candidate]; !dup {
			return candidate
		}
	}
}

// AllocateTableLabel is AllocateLabel over a table's full label set, reserved
// bands included.
func AllocateTableLabel(t *Table) string {
	all := t.All()
	labels := make([]string, len(all))
	for i, e := range all {
		labels[i] = e.Label
	}
	return AllocateLabel(labels)
}
