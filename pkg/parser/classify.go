package parser

import (
	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// classify assigns token kinds to the declaration and values of el. It is
// rerun whenever a continuation line adds values.
func (a *assembler) classify(el *rfmodel.Element) {
	switch el.Kind {
	case rfmodel.ElementHeader:
		a.setKinds(el.Values, rfmodel.KindHeaderColumn)
	case rfmodel.ElementSetting:
		a.token(el.Decl).Kind = a.reg.Classify(recognize.ContextSetting, a.doc.Text(el.Decl))
		a.classifySettingValues(el)
	case rfmodel.ElementLocalSetting:
		ctx := recognize.ContextTestCaseSetting
		if a.section.Kind == rfmodel.SectionKeywords {
			ctx = recognize.ContextKeywordSetting
		}
		a.token(el.Decl).Kind = a.reg.Classify(ctx, a.doc.Text(el.Decl))
		a.classifySettingValues(el)
	case rfmodel.ElementVariable:
		a.token(el.Decl).Kind = a.reg.Classify(recognize.ContextVariable, a.doc.Text(el.Decl))
		a.setKinds(el.Values, rfmodel.KindVariableValue)
	case rfmodel.ElementExecutableRow:
		a.classifyRow(el)
	case rfmodel.ElementComment:
		if el.Decl != rfmodel.NoToken && a.token(el.Decl).Kind != rfmodel.KindComment {
			a.token(el.Decl).Kind = rfmodel.KindComment
		}
		a.setKinds(el.Values, rfmodel.KindComment)
	case rfmodel.ElementDefinition, rfmodel.ElementEmptyLine:
	}
}

func (a *assembler) token(id rfmodel.TokenID) *rfmodel.Token {
	return a.doc.Token(id)
}

func (a *assembler) setKinds(ids []rfmodel.TokenID, kind rfmodel.TokenKind) {
	for _, id := range ids {
		a.token(id).Kind = kind
	}
}

func (a *assembler) classifySettingValues(el *rfmodel.Element) {
	declKind := a.doc.Kind(el.Decl)
	generic := rfmodel.KindSettingValue
	if el.Kind == rfmodel.ElementLocalSetting {
		generic = rfmodel.KindLocalValue
	}

	for idx, id := range el.Values {
		tok := a.token(id)
		switch {
		case idx == 0 && declKind.TakesKeyword():
			tok.Kind = rfmodel.KindKeywordCall
		case idx > 0 && declKind == rfmodel.KindSettingLibrary:
			if kind, ok := a.reg.Lookup(recognize.ContextLibraryAlias, tok.Text); ok {
				tok.Kind = kind
			} else {
				tok.Kind = generic
			}
		default:
			tok.Kind = generic
		}
	}
}

// classifyRow assigns kinds along a row: an optional old-style loop marker,
// assignments, then the action or loop keyword, then arguments.
func (a *assembler) classifyRow(el *rfmodel.Element) {
	ids := make([]rfmodel.TokenID, 0, 1+len(el.Values))
	ids = append(ids, el.Decl)
	ids = append(ids, el.Values...)

	idx := 0
	if a.token(ids[0]).Raw == rfmodel.EmptyCell {
		a.token(ids[0]).Kind = rfmodel.KindForContinue
		idx++
	}

	for idx < len(ids) && a.reg.Classify(recognize.ContextExecutable, a.doc.Text(ids[idx])) == rfmodel.KindAssignment {
		a.token(ids[idx]).Kind = rfmodel.KindAssignment
		idx++
	}

	loop := false
	if idx < len(ids) {
		tok := a.token(ids[idx])
		switch a.reg.Classify(recognize.ContextExecutable, tok.Text) {
		case rfmodel.KindFor:
			tok.Kind = rfmodel.KindFor
			loop = true
		case rfmodel.KindEnd:
			tok.Kind = rfmodel.KindEnd
		default:
			tok.Kind = rfmodel.KindAction
		}
		idx++
	}

	for ; idx < len(ids); idx++ {
		tok := a.token(ids[idx])
		if loop && a.reg.Classify(recognize.ContextExecutable, tok.Text) == rfmodel.KindForIn {
			tok.Kind = rfmodel.KindForIn
			loop = false
			continue
		}
		tok.Kind = rfmodel.KindArgument
	}
}
