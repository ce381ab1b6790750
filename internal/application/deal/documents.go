package deal

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// documentSet keeps the 1:1 invariant between active techniques and their
// legal-document placeholders. The base PSA and Deed always exist.
type documentSet struct {
	docs []domain.Document
}

var documentCatalog = map[domain.DocumentType]struct {
	name        string
	description string
}{
	domain.DocPSA: {
		name:        "Purchase and Sale Agreement (PSA)",
		description: "Core purchase contract for the property",
	},
	domain.DocDeed: {
		name:        "Deed",
		description: "Instrument transferring title to the buyer",
	},
	domain.DocAuthorizationLetter: {
		name:        "Authorization Letter",
		description: "Lets the buyer talk to the seller's lender",
	},
	domain.DocPromissoryNote: {
		name:        "Promissory Note",
		description: "Seller-to-buyer loan instrument",
	},
	domain.DocWrapAroundNote: {
		name:        "Wrap-Around Mortgage Note",
		description: "New note wrapping the existing mortgage",
	},
	domain.DocLeaseOption: {
		name:        "Lease with Option to Purchase Agreement",
		description: "Lease plus unilateral purchase right",
	},
	domain.DocAssignmentContract: {
		name:        "Assignment of Contract",
		description: "Assigns the purchase contract to the end buyer",
	},
	domain.DocAssetTransfer: {
		name:        "Asset Transfer Agreement",
		description: "Transfers the seller's additional assets",
	},
}

func newDocumentSet() *documentSet {
	ds := &documentSet{}
	ds.add(domain.DocPSA)
	ds.add(domain.DocDeed)
	return ds
}

// add registers a draft document if one of that type is not already present.
func (ds *documentSet) add(t domain.DocumentType) {
	for _, d := range ds.docs {
		if d.Type == t {
			return
		}
	}
	entry := documentCatalog[t]
	ds.docs = append(ds.docs, domain.Document{
		ID:          uuid.New().String(),
		Type:        t,
		Name:        entry.name,
		Description: entry.description,
		Status:      domain.DocStatusDraft,
	})
}

func (ds *documentSet) remove(t domain.DocumentType) {
	for i, d := range ds.docs {
		if d.Type == t {
			ds.docs = append(ds.docs[:i], ds.docs[i+1:]...)
			return
		}
	}
}

// Documents returns a copy of the current document list in creation order.
func (e *Engine) Documents() []domain.Document {
	return append([]domain.Document(nil), e.docs.docs...)
}

// SignDocument advances a document's lifecycle one step:
// draft → ready → signed. Signing a signed document is a no-op.
func (e *Engine) SignDocument(t domain.DocumentType) error {
	for i, d := range e.docs.docs {
		if d.Type != t {
			continue
		}
		switch d.Status {
		case domain.DocStatusDraft:
			e.docs.docs[i].Status = domain.DocStatusReady
		case domain.DocStatusReady:
			e.docs.docs[i].Status = domain.DocStatusSigned
		}
		return nil
	}
	return fmt.Errorf("deal.SignDocument: no %s document in this deal", t)
}
