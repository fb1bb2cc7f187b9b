package scoring

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// MaxKeywords bounds how many job keywords are matched against a resume.
const MaxKeywords = 20

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again all also an and any are as at be
		because been before being below between both but by can could did do does doing down
		during each etc few for from further had has have having he her here hers him his how
		i if in into is it its itself just me more most my no nor not now of off on once only
		or other our ours out over own same she should so some such than that the their them
		then there these they this those through to too under until up very was we were what
		when where which while who whom why will with would you your yours
		ability able across candidate candidates company day experience experienced help ideal
		including job join looking must new plus preferred required requirements responsibilities
		role strong team teams work working years year well within etc using use`) {
		stopWords[w] = struct{}{}
	}
}

// CleanText strips HTML markup from pasted job postings. Plain text passes
// through unchanged apart from whitespace.
func CleanText(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return strings.Join(strings.Fields(raw), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}
	doc.Find("script, style").Remove()
	// Block elements run together in Text() without a separator.
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Find("body").Text()), " ")
}

// Tokenize lowercases text and splits it into words. Symbols that are part of
// technology names (c++, c#, node.js) are kept inside the token.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Keywords returns the most frequent meaningful words of a job description,
// most frequent first, ties broken alphabetically.
func Keywords(jobDescription string, limit int) []string {
	counts := map[string]int{}
	for _, tok := range Tokenize(CleanText(jobDescription)) {
		if len(tok) < 2 || isNumber(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}
