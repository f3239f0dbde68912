package usecases

import (
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
)

// requiredDocs maps each application category to its ordered checklist.
// A doc type may be required by more than one category; the property
// section lists the common and the category-specific keys.
var requiredDocs = map[entities.DocumentCategory][]string{
	entities.CategoryEmployeeBuilderPurchase: {
		"passport",
		"addressProof",
		"panCard",
		"salarySlip",
		"form16",
		"sixMonthBankStatement",
		"floorPlanDoc",
		"lightBill",
		"propertyCard",
		"chainAgreement",
		"ocrReceipt",
		"ocrReflection",
		"societyNoc",
		"vendorKyc",
		"vendorCancelCheque",
		"xyzLetter",
		"xyzDocument",
	},
	entities.CategoryBusinessBuilderResale: {
		"passport",
		"addressProof",
		"panCard",
		"threeYearItr",
		"oneYearBankStatement",
		"businessProofs",
		"threeYearForm26AS",
		"floorPlanDoc",
		"lightBill",
		"propertyCard",
		"chainAgreement",
		"ocrReceipt",
		"ocrReflection",
		"societyNoc",
		"vendorKyc",
		"vendorCancelCheque",
		"xyzLetter",
		"xyzDocument",
	},
}

// ChecklistValidator decides whether a borrower's uploaded-document set
// satisfies a category's requirement and answers the complement set.
// It is stateless; completeness is always recomputed from the set the
// caller passes in, never cached.
type ChecklistValidator struct{}

func NewChecklistValidator() *ChecklistValidator {
	return &ChecklistValidator{}
}

// RequiredDocs returns the ordered checklist for a category.
func (v *ChecklistValidator) RequiredDocs(category entities.DocumentCategory) ([]string, error) {
	docs, ok := requiredDocs[category]
	if !ok {
		return nil, errors.ErrUnknownCategory
	}
	out := make([]string, len(docs))
	copy(out, docs)
	return out, nil
}

// Missing returns requiredDocs(category) \ uploaded, preserving the
// checklist order. Uploading a doc type outside the checklist is
// accepted upstream but never reduces the missing set.
func (v *ChecklistValidator) Missing(category entities.DocumentCategory, uploaded []string) ([]string, error) {
	required, err := v.RequiredDocs(category)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(uploaded))
	for _, d := range uploaded {
		have[d] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, d := range required {
		if _, ok := have[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing, nil
}

// CanSubmit is true iff nothing is missing and the borrower has chosen
// a concrete address-proof variant. The variant choice is independent
// of the doc type set: "addressProof" is a generic slot whose meaning
// must be pinned before the upload counts.
func (v *ChecklistValidator) CanSubmit(category entities.DocumentCategory, uploaded []string, variantChosen bool) (bool, error) {
	missing, err := v.Missing(category, uploaded)
	if err != nil {
		return false, err
	}
	return len(missing) == 0 && variantChosen, nil
}
