package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/config"
	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/schema"
	"github.com/AndreyAkinshin/dictmatch/internal/score"
	"github.com/AndreyAkinshin/dictmatch/internal/unordered"
)

// caseExtensions are the file extensions picked up when a directory is loaded.
var caseExtensions = []string{".json", ".yaml", ".yml"}

// LoadPaths loads cases from files and directories. Directories are walked
// recursively for case files. Case names must be unique across all paths.
func LoadPaths(paths []string) ([]Case, error) {
	var all []Case
	seen := make(map[string]string)

	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			cases, err := LoadFile(file)
			if err != nil {
				return nil, err
			}
			for _, c := range cases {
				if prev, dup := seen[c.Name]; dup {
					return nil, errors.Configf("duplicate case name %q in %s (first defined in %s)", c.Name, file, prev)
				}
				seen[c.Name] = file
			}
			all = append(all, cases...)
		}
	}

	return all, nil
}

// LoadFile loads every case from a single JSON or YAML case file.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("case file", path)
		}
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read case file %s", path))
	}
	return Parse(path, data)
}

// Parse decodes case file data. The path selects the format and anchors
// relative "$file" references.
func Parse(path string, data []byte) ([]Case, error) {
	jsonData, err := config.ToJSON(path, data)
	if err != nil {
		return nil, errors.Validation(err, fmt.Sprintf("%s: %v", path, err))
	}

	if err := schema.ValidateCases(jsonData); err != nil {
		return nil, errors.Validation(err, fmt.Sprintf("%s: %v", path, err))
	}

	doc, err := decodeOrdered(jsonData)
	if err != nil {
		return nil, errors.Validation(err, fmt.Sprintf("%s: %v", path, err))
	}

	rawCases, _ := doc.(*compare.Map).Get("cases")
	baseDir := filepath.Dir(path)

	var cases []Case
	for i, rc := range rawCases.([]any) {
		c, err := buildCase(rc.(*compare.Map), baseDir)
		if err != nil {
			return nil, errors.Configf("%s: cases[%d]: %v", path, i, err)
		}
		c.File = path
		cases = append(cases, *c)
	}

	return cases, nil
}

func buildCase(raw *compare.Map, baseDir string) (*Case, error) {
	c := &Case{Kind: KindMatch}

	name, _ := raw.Get("name")
	c.Name = name.(string)
	if k, ok := raw.Get("kind"); ok {
		c.Kind = Kind(k.(string))
	}
	if v, ok := raw.Get("report_all"); ok {
		c.ReportAll = v.(bool)
	}
	if v, ok := raw.Get("value_comparator"); ok {
		c.ValueComparator = v.(string)
	}
	if v, ok := raw.Get("weights"); ok {
		c.Weights = weightsOf(v.(*compare.Map))
	}
	c.IgnoreKeys = keySetOf(raw, "ignore")
	c.OnlyKeys = keySetOf(raw, "only")

	expected, _ := raw.Get("expected")
	actual, _ := raw.Get("actual")

	actual, err := resolveFileRefs(actual, baseDir)
	if err != nil {
		return nil, fmt.Errorf("actual: %w", err)
	}
	c.Actual = actual

	expected, err = resolveFileRefs(expected, baseDir)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	if c.Kind == KindMatch {
		c.Expected, err = resolveMarkers(expected, "expected")
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if _, ok := c.Actual.([]any); !ok {
		return nil, fmt.Errorf("actual: match_all needs a list, got %T", c.Actual)
	}
	items, ok := expected.([]any)
	if !ok {
		return nil, fmt.Errorf("expected: match_all needs a list, got %T", expected)
	}
	for j, item := range items {
		m, ok := item.(*compare.Map)
		if !ok {
			return nil, fmt.Errorf("expected[%d]: must be an object with a \"value\" member", j)
		}
		value, _ := m.Get("value")
		value, err := resolveMarkers(value, fmt.Sprintf("expected[%d].value", j))
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, unordered.Expected{
			Value:      value,
			IgnoreKeys: keySetOf(m, "ignore"),
			OnlyKeys:   keySetOf(m, "only"),
		})
	}
	return c, nil
}

// keySetOf reads a key list member. Keys are matched by their string form,
// which is how decoded object keys are stored.
func keySetOf(m *compare.Map, member string) compare.KeySet {
	v, ok := m.Get(member)
	if !ok {
		return nil
	}
	list := v.([]any)
	keys := make([]any, len(list))
	for i, k := range list {
		keys[i] = compare.Stringify(k)
	}
	return compare.NewKeySet(keys...)
}

func weightsOf(m *compare.Map) score.Weights {
	w := make(score.Weights, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		if n, ok := v.(int64); ok {
			w[compare.Stringify(k)] = int(n)
		}
	}
	return w
}

// expand returns the case files under path, sorted.
func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("case file", path)
		}
		return nil, errors.Wrap(err, fmt.Sprintf("failed to stat %s", path))
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var matches []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isCaseFile(p) {
			return nil
		}
		matches = append(matches, p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to walk %s", path))
	}

	sort.Strings(matches)
	return matches, nil
}

func isCaseFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range caseExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// resolveFileRefs recursively resolves {"$file": "path"} references.
func resolveFileRefs(value any, baseDir string) (any, error) {
	switch v := value.(type) {
	case *compare.Map:
		if ref, ok := v.Get(markerFile); ok && v.Len() == 1 {
			s, isString := ref.(string)
			if !isString {
				return nil, fmt.Errorf("%q must be a path", markerFile)
			}
			return loadFileRef(s, baseDir)
		}

		out := compare.NewMap()
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			r, err := resolveFileRefs(e, baseDir)
			if err != nil {
				return nil, err
			}
			out.Set(k, r)
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			r, err := resolveFileRefs(e, baseDir)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil

	default:
		return value, nil
	}
}

// loadFileRef loads a document referenced by "$file". JSON and YAML files are
// decoded; anything else is returned as a string.
func loadFileRef(ref, baseDir string) (any, error) {
	if strings.Contains(ref, "..") {
		return nil, fmt.Errorf("$file path contains \"..\": %s", ref)
	}

	path := filepath.Join(baseDir, ref)

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(absPath, absBase) {
		return nil, fmt.Errorf("$file path escapes case directory: %s", ref)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("$file %q: %w", ref, err)
	}

	if !isCaseFile(path) {
		return string(data), nil
	}

	jsonData, err := config.ToJSON(path, data)
	if err != nil {
		return nil, fmt.Errorf("$file %q: %w", ref, err)
	}
	v, err := decodeOrdered(jsonData)
	if err != nil {
		return nil, fmt.Errorf("$file %q: %w", ref, err)
	}
	return v, nil
}
