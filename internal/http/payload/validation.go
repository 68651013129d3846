package payload

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jellydator/validation"
)

type QueryDecoder struct{}

// DecodeRankQuery reads the optional limit query parameter. A missing limit
// means DefaultRankLimit.
func (qd QueryDecoder) DecodeRankQuery(r *http.Request) (RankRequest, error) {
	req := RankRequest{Limit: DefaultRankLimit}

	raw := r.URL.Query().Get("limit")
	if raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return RankRequest{}, fmt.Errorf("parse limit %q: %w", raw, err)
		}
		req.Limit = limit
	}

	if err := qd.validatePayload(req); err != nil {
		return RankRequest{}, err
	}
	return req, nil
}

func (qd QueryDecoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
