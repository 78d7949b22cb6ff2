package constants

// Canonical field names produced by both extraction tiers. Stable values;
// stored in DB rows and referenced by the dashboard forms.
const (
	FieldOwnerName          = "owner_name"
	FieldCompanyName        = "company_name"
	FieldAddress            = "address"
	FieldTotalHectares      = "total_hectares"
	FieldParcelCount        = "parcel_count"
	FieldRegistrationNumber = "registration_number"
	FieldVATNumber          = "vat_number"
	FieldRegistrationDate   = "registration_date"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldIBAN               = "iban"
	FieldTotalAmount        = "total_amount"
	FieldCurrency           = "currency"
	FieldCrops              = "crops"
)

// CanonicalFields is the full taxonomy, in display order. AI-tier confidence
// is recomputed as coverage over this list.
var CanonicalFields = []string{
	FieldOwnerName,
	FieldCompanyName,
	FieldAddress,
	FieldTotalHectares,
	FieldParcelCount,
	FieldRegistrationNumber,
	FieldVATNumber,
	FieldRegistrationDate,
	FieldEmail,
	FieldPhone,
	FieldIBAN,
	FieldTotalAmount,
	FieldCurrency,
	FieldCrops,
}

// criticalFields are the fields whose presence materially moves overall
// confidence: who owns the land, where it is, how much of it there is.
var criticalFields = map[string]struct{}{
	FieldOwnerName:     {},
	FieldCompanyName:   {},
	FieldAddress:       {},
	FieldTotalHectares: {},
}

// legalLocationFields earn the AI tier a coverage bonus: they anchor the
// document to a registered entity and a place.
var legalLocationFields = map[string]struct{}{
	FieldRegistrationNumber: {},
	FieldVATNumber:          {},
	FieldAddress:            {},
	FieldIBAN:               {},
}

var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalFields))
	for _, f := range CanonicalFields {
		set[f] = struct{}{}
	}
	return set
}()

func IsCanonicalField(name string) bool {
	_, ok := canonicalSet[name]
	return ok
}

func IsCriticalField(name string) bool {
	_, ok := criticalFields[name]
	return ok
}

func IsLegalLocationField(name string) bool {
	_, ok := legalLocationFields[name]
	return ok
}

// NumericFields parse to float64 in results; everything else stays a string.
var NumericFields = map[string]struct{}{
	FieldTotalHectares: {},
	FieldParcelCount:   {},
	FieldTotalAmount:   {},
}

func IsNumericField(name string) bool {
	_, ok := NumericFields[name]
	return ok
}
