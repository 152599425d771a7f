package transportorder

import "transport/internal/pkg/errs"

// OwnershipMode says where an order's child rows are anchored. Orders
// created through the public endpoint own their rows directly; orders
// materialized from a legacy source document keep their rows parented
// under that document and reach them via the reference pair.
//
// The mode is resolved once, when the order is constructed or restored,
// instead of re-deciding at every child-table access.
type OwnershipMode struct {
	viaReference bool
	refDoctype   string
	refDocname   string
}

// DirectOwnership anchors child rows under the order itself.
func DirectOwnership() OwnershipMode {
	return OwnershipMode{}
}

// ViaReference anchors child rows under an originating document,
// identified by its document type and name.
func ViaReference(doctype, docname string) (OwnershipMode, error) {
	if doctype == "" {
		return OwnershipMode{}, errs.NewValueIsRequiredError("reference doctype")
	}
	if docname == "" {
		return OwnershipMode{}, errs.NewValueIsRequiredError("reference docname")
	}
	return OwnershipMode{viaReference: true, refDoctype: doctype, refDocname: docname}, nil
}

// IsDirect reports whether child rows are anchored under the order itself.
func (m OwnershipMode) IsDirect() bool {
	return !m.viaReference
}

// Reference returns the originating document pair. ok is false for the
// direct mode.
func (m OwnershipMode) Reference() (doctype, docname string, ok bool) {
	return m.refDoctype, m.refDocname, m.viaReference
}
