package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads stylesheets supplied alongside generated rules and re-emits
// them in dense form acceptable inside <style amp-custom>.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Compact drops comments and line breaks, collapses whitespace and removes
// constructs AMP rejects (@import, !important).
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Compact(data []byte, source ...string) string {
	if len(bytes.TrimSpace(data)) == 0 {
		return ""
	}
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Compacting CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	var (
		out       strings.Builder
		selectors []string
		first     = true
	)

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return out.String()

		case css.AtRuleGrammar:
			atRule := string(data)
			if strings.EqualFold(atRule, "@import") || strings.EqualFold(atRule, "@charset") {
				p.log.Debug("Dropping @-rule", zap.String("rule", atRule))
				continue
			}
			out.WriteString(atRule)
			if v := joinTokens(parser.Values()); v != "" {
				out.WriteString(" ")
				out.WriteString(v)
			}
			out.WriteString(";")
			first = true

		case css.BeginAtRuleGrammar:
			out.WriteString(string(data))
			if v := joinTokens(parser.Values()); v != "" {
				out.WriteString(" ")
				out.WriteString(v)
			}
			out.WriteString("{")
			first = true

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			out.WriteString("}")
			first = true

		case css.QualifiedRuleGrammar:
			selectors = append(selectors, splitSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors = append(selectors, splitSelectors(data, parser.Values())...)
			out.WriteString(strings.Join(selectors, ","))
			out.WriteString("{")
			selectors = selectors[:0]
			first = true

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinTokens(parser.Values())
			if strings.HasSuffix(value, "!important") {
				p.log.Debug("Dropping !important", zap.String("property", string(data)))
				value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
			}
			if !first {
				out.WriteString(";")
			}
			out.WriteString(string(data))
			out.WriteString(":")
			out.WriteString(value)
			first = false
		}
	}
}

// splitSelectors extracts selector strings from token data.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.Join(strings.Fields(strings.Trim(s, "{}")), " ")
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// joinTokens builds raw value string with whitespace runs collapsed.
func joinTokens(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}
