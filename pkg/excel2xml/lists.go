package excel2xml

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/unicode/norm"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// CloseMatchCutoff is the minimal similarity for a spreadsheet value to be
// mapped onto a list node name.
const CloseMatchCutoff = 0.6

var (
	nameSeparators = regexp.MustCompile(`[\s/]+`)
	nameIllegal    = regexp.MustCompile(`[^a-z0-9-]+`)
)

// ListNode is a node of a controlled vocabulary in a JSON project file.
// The list itself is the root node.
type ListNode struct {
	Name     string            `json:"name"`
	Labels   map[string]string `json:"labels"`
	Comments map[string]string `json:"comments,omitempty"`
	Nodes    []ListNode        `json:"nodes,omitempty"`
}

type projectFile struct {
	Project struct {
		Shortcode string     `json:"shortcode"`
		Lists     []ListNode `json:"lists"`
	} `json:"project"`
}

// LoadList reads the list called listName from a JSON project file.
func LoadList(path, listName string) (*ListNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	var pf projectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	for i := range pf.Project.Lists {
		if pf.Project.Lists[i].Name == listName {
			return &pf.Project.Lists[i], nil
		}
	}
	return nil, fmt.Errorf("%w: list %q in %s", core.ErrNotFound, listName, path)
}

// walk calls fn for every node below n, depth first, parents before children.
func (n *ListNode) walk(fn func(node *ListNode) error) error {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if err := fn(child); err != nil {
			return err
		}
		if err := child.walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the names of all nodes below the list root. The root is
// not a selectable node.
func (n *ListNode) Names() []string {
	var names []string
	_ = n.walk(func(node *ListNode) error {
		names = append(names, node.Name)
		return nil
	})
	return names
}

// CreateJSONListMapping maps the labels of all nodes of a list in the given
// language to the node names. Every label is present both as written and
// trimmed in lower case. The list root is not part of the mapping.
func CreateJSONListMapping(path, listName, language string) (map[string]string, error) {
	list, err := LoadList(path, listName)
	if err != nil {
		return nil, err
	}
	res := make(map[string]string)
	err = list.walk(func(node *ListNode) error {
		label, ok := node.Labels[language]
		if !ok {
			return fmt.Errorf("%w: node %q of list %q has no %q label", core.ErrNotFound, node.Name, listName, language)
		}
		res[label] = node.Name
		res[strings.ToLower(strings.TrimSpace(label))] = node.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateJSONExcelListMapping maps free-text spreadsheet values onto the
// node names of a list by string similarity. Each value is split by sep
// (when sep is not empty), trimmed and lower-cased; corrections may replace
// a lower-cased value before matching. The returned mapping is keyed by the
// lower-cased value. Matching compares SimplifyName of the value with the
// node names. Values without a name scoring at least CloseMatchCutoff are
// returned as unmatched, each once.
func CreateJSONExcelListMapping(path, listName string, values []string, sep string, corrections map[string]string) (map[string]string, []string, error) {
	list, err := LoadList(path, listName)
	if err != nil {
		return nil, nil, err
	}
	names := list.Names()

	res := make(map[string]string)
	seen := make(map[string]bool)
	var unmatched []string
	for _, value := range splitValues(values, sep) {
		if seen[value] {
			continue
		}
		seen[value] = true
		word := value
		if c, ok := corrections[value]; ok {
			word = c
		}
		if match, ok := CloseMatch(SimplifyName(word), names, CloseMatchCutoff); ok {
			res[value] = match
		} else {
			unmatched = append(unmatched, value)
		}
	}
	return res, unmatched, nil
}

// SimplifyName reduces a label to the alphabet of node names: lower case,
// accents stripped ("ä" becomes "a"), runs of whitespace and slashes turned
// into "-", anything else outside [a-z0-9-] removed.
func SimplifyName(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s = nameSeparators.ReplaceAllString(b.String(), "-")
	return nameIllegal.ReplaceAllString(s, "")
}

func splitValues(values []string, sep string) []string {
	var out []string
	for _, v := range values {
		parts := []string{v}
		if sep != "" {
			parts = strings.Split(v, sep)
		}
		for _, p := range parts {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// CloseMatch returns the candidate most similar to word, using the
// Ratcliff/Obershelp ratio on characters. Candidates scoring below cutoff
// are ignored; ties go to the lexically greater candidate.
func CloseMatch(word string, candidates []string, cutoff float64) (string, bool) {
	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(chars(word))
	best, bestScore := "", -1.0
	for _, c := range candidates {
		m.SetSeq1(chars(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if score > bestScore || (score == bestScore && c > best) {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
