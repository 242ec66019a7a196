package placeholder

import (
	"fmt"
)

// PromptMessageFormat is the question asked for each missing placeholder.
const PromptMessageFormat = "Enter a value for {{%s}}:"

// AskFunc asks the user for a value and returns the answer.
type AskFunc func(message string) (string, error)

// ResolveParams contains parameters for Resolve.
type ResolveParams struct {
	// Root is the project tree to scan.
	Root string
	// Explicit holds the replacements configured by the recipe. It is not modified.
	Explicit map[string]string
	// ProjectName is the default value of NameKey.
	ProjectName string
	// Ask is called once per missing key, in sorted key order.
	Ask AskFunc
}

// Resolver builds the final replacement map for a project tree.
type Resolver interface {
	// Resolve returns the explicit replacements plus NameKey and the prompted answers.
	Resolve(params ResolveParams) (map[string]string, error)

	// Missing returns the sorted keys used below root that replacements does not define.
	Missing(root string, replacements map[string]string) ([]string, error)
}

type realResolver struct {
	scanner Scanner
}

// NewResolver creates a new Resolver.
func NewResolver(scanner Scanner) Resolver {
	return &realResolver{
		scanner: scanner,
	}
}

// Resolve returns the explicit replacements plus NameKey and the prompted answers.
//
// Answers made only of ASCII characters are discarded, so their tokens stay
// unresolved in the output.
func (r *realResolver) Resolve(params ResolveParams) (map[string]string, error) {
	replacements := make(map[string]string, len(params.Explicit)+1)
	for key, value := range params.Explicit {
		replacements[key] = value
	}
	if _, ok := replacements[NameKey]; !ok {
		replacements[NameKey] = params.ProjectName
	}

	missing, err := r.Missing(params.Root, replacements)
	if err != nil {
		return nil, err
	}

	for _, key := range missing {
		answer, err := params.Ask(fmt.Sprintf(PromptMessageFormat, key))
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrPrompt, key, err)
		}

		if isASCII(answer) {
			continue
		}
		replacements[key] = answer
	}

	return replacements, nil
}

// Missing returns the sorted keys used below root that replacements does not define.
func (r *realResolver) Missing(root string, replacements map[string]string) ([]string, error) {
	keys, err := r.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range keys {
		if _, ok := replacements[key]; !ok {
			missing = append(missing, key)
		}
	}

	return missing, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
