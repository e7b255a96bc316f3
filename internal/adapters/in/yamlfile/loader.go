// Package yamlfile reads a complete rate form from a YAML document so that it
// can be reviewed offline.
package yamlfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ratecalc/internal/adapters/in/dto"
	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Decode reads one shipment review document from r. Unknown keys are rejected
// so that a misspelled field does not silently count as missing.
func Decode(r io.Reader) (queries.ReviewShipmentQuery, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var req dto.ShipmentReviewRequest
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return queries.ReviewShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("document", err)
		}
		return queries.ReviewShipmentQuery{}, errs.NewValueIsInvalidErrorWithCause("document", err)
	}

	return req.ToQuery()
}

// Load reads the document at path.
func Load(path string) (queries.ReviewShipmentQuery, error) {
	f, err := os.Open(path)
	if err != nil {
		return queries.ReviewShipmentQuery{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	query, err := Decode(f)
	if err != nil {
		return queries.ReviewShipmentQuery{}, fmt.Errorf("%s: %w", path, err)
	}
	return query, nil
}
