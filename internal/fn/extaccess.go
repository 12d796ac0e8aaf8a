package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	ddeSig = sig("DDE", numberResult,
		req("server", category.Text),
		req("topic", category.Text),
		req("item", category.Text),
		ir.Param{Name: "mode", Requires: category.Number, Optional: true, TrailingOnly: true},
	)
	hyperlinkSig = sig("HYPERLINK", textResult,
		req("iri", category.Text),
		opt("label", 0),
	)
)

var extaccessSignatures = []ir.Signature{ddeSig, hyperlinkSig}

// DDEMode selects how DDE converts the returned data. DDEDefault leaves
// the argument out.
type DDEMode int

const (
	DDEDefault DDEMode = iota
	// DDENumberLocalized parses numbers with the local number format.
	DDENumberLocalized
	// DDENumberEnUS parses numbers as en-US.
	DDENumberEnUS
	// DDEText returns everything as text.
	DDEText
)

func (m DDEMode) value() ir.Value {
	switch m {
	case DDENumberLocalized:
		return ir.Int(0)
	case DDENumberEnUS:
		return ir.Int(1)
	case DDEText:
		return ir.Int(2)
	default:
		return nil
	}
}

// DDE requests item from a DDE server and topic.
func DDE(server, topic, item ir.Value, mode DDEMode) (*ir.Call, error) {
	return ddeSig.Call(ir.Provided{Value: server}, ir.Provided{Value: topic}, ir.Provided{Value: item}, ir.Opt(mode.value()))
}

// Hyperlink creates a link to iri shown as label (the iri itself when
// label is nil).
func Hyperlink(iri, label ir.Value) (*ir.Call, error) {
	return hyperlinkSig.Call(ir.Provided{Value: iri}, ir.Opt(label))
}
