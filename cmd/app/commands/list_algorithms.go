package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

type algorithmOutput struct {
	Algorithm string `json:"algorithm"`
	Label     string `json:"label"`
	KeyLen    int    `json:"key_len"`
	NonceLen  int    `json:"nonce_len"`
	TagLen    int    `json:"tag_len"`
	Shape     string `json:"shape"`
}

// RunListAlgorithms prints the compiled-in algorithms with their constants.
func RunListAlgorithms(writer io.Writer, format string) error {
	algorithms := make([]algorithmOutput, 0, len(aeadDomain.All()))
	for _, alg := range aeadDomain.All() {
		params, err := aeadDomain.Lookup(alg)
		if err != nil {
			return err
		}
		algorithms = append(algorithms, algorithmOutput{
			Algorithm: string(params.Algorithm),
			Label:     params.Label,
			KeyLen:    params.KeyLen,
			NonceLen:  params.NonceLen,
			TagLen:    params.TagLen,
			Shape:     params.Shape.String(),
		})
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(algorithms); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ALGORITHM\tLABEL\tKEY\tNONCE\tTAG\tSHAPE")
	for _, a := range algorithms {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			a.Algorithm, a.Label, a.KeyLen, a.NonceLen, a.TagLen, a.Shape)
	}
	return tw.Flush()
}
