package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// ValidateQuery parses and compiles a jq program without running it, so a
// bad --query fails before any input is read.
func ValidateQuery(query string) error {
	_, err := compileQuery(query)
	return err
}

func compileQuery(query string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}
	return code, nil
}

// runQuery runs a jq program over data and writes each result as JSON.
// When prettyPrint is true, output is indented.
func (p *Printer) runQuery(query string, data interface{}, prettyPrint bool) error {
	results, err := runQueryRaw(query, data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if prettyPrint {
		enc.SetIndent("", "  ")
	}
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// runQueryRaw normalizes data, runs a jq program, and returns its results.
func runQueryRaw(query string, data interface{}) ([]interface{}, error) {
	code, err := compileQuery(query)
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeToInterface(data)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	var results []interface{}
	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %s", safeErrorMessage(queryErr))
		}
		results = append(results, v)
	}
	return results, nil
}

// normalizeToInterface round-trips data through JSON so gojq and jsonpath
// see only maps, slices and scalars.
func normalizeToInterface(data interface{}) (interface{}, error) {
	switch data.(type) {
	case map[string]interface{}, []interface{}, string, float64, bool, nil:
		return data, nil
	}
	buf, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return out, nil
}

func formatInvalidQueryErr(err error) error {
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "unexpected eof") {
		return fmt.Errorf("invalid --query: %w\nHint: query looks incomplete; quote it fully", err)
	}
	return fmt.Errorf("invalid --query: %w", err)
}

// safeErrorMessage returns a best-effort string for errors whose Error
// method may panic (seen with some gojq runtime errors on typed values).
func safeErrorMessage(err error) (msg string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			msg = fmt.Sprintf("%T", err)
		}
	}()

	msg = strings.TrimSpace(err.Error())
	if msg == "" {
		return fmt.Sprintf("%T", err)
	}
	return msg
}
