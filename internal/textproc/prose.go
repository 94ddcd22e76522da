// Package textproc adapts third-party text engines to the capabilities used by
// the analyzers: sentence segmentation, tokenization with part-of-speech tags
// and language identification.
package textproc

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Token is a tagged word. Tag is the Penn Treebank tag from the model and
// Universal its coarse universal-tagset category.
type Token struct {
	Text      string
	Tag       string
	Universal string
}

// Prose segments and tags English text with the prose model. The zero value is
// ready to use.
type Prose struct{}

// Sentences splits text into sentences. Blank text has no sentences.
func (Prose) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		out = append(out, s.Text)
	}
	return out
}

// Tag tokenizes text and tags every token.
func (Prose) Tag(text string) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, Token{Text: t.Text, Tag: t.Tag, Universal: Universal(t.Tag)})
	}
	return out
}

// Universal tagset categories.
const (
	UniAdj  = "ADJ"
	UniAdp  = "ADP"
	UniAdv  = "ADV"
	UniConj = "CONJ"
	UniDet  = "DET"
	UniNoun = "NOUN"
	UniNum  = "NUM"
	UniPrt  = "PRT"
	UniPron = "PRON"
	UniVerb = "VERB"
	UniPunc = "."
	UniX    = "X"
)

var ptbUniversal = map[string]string{
	"!": UniPunc, "#": UniPunc, "$": UniPunc, "''": UniPunc, "(": UniPunc, ")": UniPunc,
	",": UniPunc, "-LRB-": UniPunc, "-RRB-": UniPunc, ".": UniPunc, ":": UniPunc, "?": UniPunc,
	"``": UniPunc, "HYPH": UniPunc, "NFP": UniPunc,
	"CC": UniConj,
	"CD": UniNum,
	"DT": UniDet, "EX": UniDet, "PDT": UniDet, "WDT": UniDet,
	"IN": UniAdp,
	"JJ": UniAdj, "JJR": UniAdj, "JJRJR": UniAdj, "JJS": UniAdj, "AFX": UniAdj,
	"MD": UniVerb, "VB": UniVerb, "VBD": UniVerb, "VBG": UniVerb, "VBN": UniVerb, "VBP": UniVerb, "VBZ": UniVerb,
	"NN": UniNoun, "NNP": UniNoun, "NNPS": UniNoun, "NNS": UniNoun, "NP": UniNoun,
	"POS": UniPrt, "PRT": UniPrt, "RP": UniPrt, "TO": UniPrt,
	"PRP": UniPron, "PRP$": UniPron, "PRP^VBP": UniPron, "WP": UniPron, "WP$": UniPron,
	"RB": UniAdv, "RBR": UniAdv, "RBS": UniAdv, "RN": UniX, "WRB": UniAdv,
	"FW": UniX, "LS": UniX, "SYM": UniX, "UH": UniX, "ADD": UniX, "GW": UniX, "XX": UniX,
}

// Universal maps a Penn Treebank tag onto the universal tagset. Unknown tags
// map to X.
func Universal(ptb string) string {
	if u, ok := ptbUniversal[ptb]; ok {
		return u
	}
	return UniX
}
