package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/tokenlang/tok/tokconfigs"
	"github.com/tokenlang/tok/toklang"
)

type tokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Value  *int64 `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func toRecords(tokens []*toklang.Token) []tokenRecord {
	records := make([]tokenRecord, 0, len(tokens))
	for _, token := range tokens {
		record := tokenRecord{
			Kind:   token.Kind.String(),
			Text:   token.Text,
			Line:   token.Pos.Line,
			Column: token.Pos.Column,
		}
		if token.Kind == toklang.TokenNumber {
			value := token.Value
			record.Value = &value
		}
		records = append(records, record)
	}
	return records
}

func printTokens(
	w io.Writer,
	tokens []*toklang.Token,
	format tokconfigs.OutputFormat,
	showPositions tokconfigs.ShowPositions,
) error {
	switch format {

	case tokconfigs.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(toRecords(tokens))

	case tokconfigs.FormatYAML:
		data, err := yaml.Marshal(toRecords(tokens))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		for _, token := range tokens {
			if showPositions && token.Pos.Source != nil {
				fmt.Fprintf(w, "%s:%d:%d\t%s\n",
					token.Pos.Source.Name, token.Pos.Line, token.Pos.Column, token)
			} else {
				fmt.Fprintln(w, token)
			}
		}
		return nil
	}
}
