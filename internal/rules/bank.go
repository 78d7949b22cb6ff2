package rules

import (
	"regexp"

	"github.com/agrodesk/docextract/constants"
)

// baseBank applies to every document type. Per-type overlays in typeBanks are
// prepended, so type-specific patterns always outrank the generic ones.
var baseBank = map[string][]Rule{
	constants.FieldOwnerName: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:owner|propri[ée]taire|proprietar|titular|inhaber)\s*[:\-]\s*([A-ZÀ-Ž][^\n,;:]{1,60})`), Clean: cleanName},
		{Pattern: regexp.MustCompile(`(?i)\bname of (?:the )?(?:owner|holder|farmer)\s*[:\-]\s*([^\n,;:]{2,60})`), Clean: cleanName},
		{Pattern: regexp.MustCompile(`(?i)\b(?:repr[ée]sent[ée]e? par|reprezentat[ăa]? prin|represented by)\s+([A-ZÀ-Ž][^\n,;:]{1,60})`), Clean: cleanName},
	},
	constants.FieldCompanyName: {
		{Pattern: regexp.MustCompile(`\b([A-ZÀ-Ž][A-Za-zÀ-ž0-9&.\- ]{1,60}\s(?:S\.?R\.?L\.?|SARL|SAS|GmbH|S\.?A\.?|EARL|GAEC|PFA|SCEA))(?:\s|,|;|\.|$)`), Clean: cleanName},
		{Pattern: regexp.MustCompile(`(?i)\b(?:company|soci[ée]t[ée]|societate[a]?|sociedad|firma)\s*[:\-]\s*([^\n,;:]{2,60})`), Clean: cleanName},
	},
	constants.FieldAddress: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:address|adresse|adres[ăa]|direcci[óo]n|anschrift|si[èe]ge(?: social)?|sediu[l]?)\s*[:\-]\s*(.{5,120}?)\s*(?:,\s*[^:,\n]{1,30}:|[\n;]|$)`), Clean: cleanAddress},
		{Pattern: regexp.MustCompile(`(?i)\b(?:located (?:at|in)|situ[ée]e? [àa]|situat[ăa]? [îi]n)\s+(.{5,120}?)\s*(?:,\s*[^:,\n]{1,30}:|[\n;.]|$)`), Clean: cleanAddress},
	},
	constants.FieldTotalHectares: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:total (?:area|surface)|surface totale|suprafa[țt][ăa](?: total[ăa])?|superficie(?: total)?|gesamtfl[äa]che|fl[äa]che)\s*[:\-]?\s*(\d+(?:[.,]\d+)?)\s*(?:ha\b|hect)?`), Clean: cleanDecimal},
		{Pattern: regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:ha|hectares?|hect[áa]reas?|hectare|hektar)\b`), Clean: cleanDecimal},
	},
	constants.FieldParcelCount: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:parcels?|parcelles?|parcele|parcelas?)\s*[:\-]\s*(\d{1,4})\b`), Clean: cleanInteger},
		{Pattern: regexp.MustCompile(`(?i)\b(\d{1,4})\s+(?:parcels?|parcelles?|parcele|parcelas?)\b`), Clean: cleanInteger},
	},
	constants.FieldRegistrationNumber: {
		{Pattern: regexp.MustCompile(`\bCUI\s*[:\-]?\s*(?:RO\s?)?(\d{2,10})\b`), Clean: cleanRegistration},
		{Pattern: regexp.MustCompile(`\bSIRET\s*[:\-]?\s*(\d(?:[\d ]{11,15})\d)\b`), Clean: cleanRegistration},
		{Pattern: regexp.MustCompile(`\bSIREN\s*[:\-]?\s*(\d(?:[\d ]{6,9})\d)\b`), Clean: cleanRegistration},
		{Pattern: regexp.MustCompile(`\bHRB\s*[:\-]?\s*(\d{3,7})\b`), Clean: cleanRegistration},
		{Pattern: regexp.MustCompile(`(?i)\b(?:registration|reg\.?)\s*(?:no|number|nr)\.?\s*[:\-]?\s*([A-Z0-9][A-Z0-9\-/ ]{2,18}[A-Z0-9])`), Clean: cleanRegistration},
	},
	constants.FieldVATNumber: {
		{Pattern: regexp.MustCompile(`\b(?:TVA|VAT|USt-IdNr\.?|NIF|CIF)\s*(?:intracommunautaire)?\s*[:\-]?\s*([A-Z]{2}\s?\d[\dA-Z ]{6,12})\b`), Clean: cleanRegistration},
		{Pattern: regexp.MustCompile(`(?i)\bvat\s*(?:no|number|nr)\.?\s*[:\-]?\s*([A-Z0-9][A-Z0-9 ]{6,14})\b`), Clean: cleanRegistration},
	},
	constants.FieldRegistrationDate: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:registered on|date d'immatriculation|data [îi]nregistr[ăa]rii|registration date|eingetragen am)\s*[:\-]?\s*(\d{4}-\d{2}-\d{2}|\d{1,2}[./]\d{1,2}[./]\d{2,4})`), Clean: cleanDate},
	},
	constants.FieldEmail: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:e-?mail|courriel)\s*[:\-]?\s*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`), Clean: cleanEmail},
		{Pattern: regexp.MustCompile(`([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`), Clean: cleanEmail},
	},
	constants.FieldPhone: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:tel|phone|t[ée]l[ée]phone|telefon|mobile?)\s*\.?\s*[:\-]?\s*(\+?[\d(][\d ().\-]{6,18}\d)`), Clean: cleanPhone},
		{Pattern: regexp.MustCompile(`(\+\d{1,3}[\d ().\-]{7,16}\d)`), Clean: cleanPhone},
	},
	constants.FieldIBAN: {
		{Pattern: regexp.MustCompile(`\b([A-Z]{2}\d{2}(?:\s?[A-Z0-9]{4}){2,7}(?:\s?[A-Z0-9]{1,4})?)\b`), Clean: cleanIBAN},
	},
	constants.FieldTotalAmount: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:total(?:\s+(?:amount|due|ttc))?|montant total|sum[ăa] total[ăa]|importe total|gesamtbetrag)\s*[:\-]?\s*(\d[\d., ]*\d|\d)\s*(?:€|lei|ron|eur|usd|\$)?`), Clean: cleanAmount},
		{Pattern: regexp.MustCompile(`(?i)(?:€|\$|\beur\b|\bron\b|\blei\b)\s*(\d[\d., ]*\d|\d)`), Clean: cleanAmount},
	},
	constants.FieldCurrency: {
		{Pattern: regexp.MustCompile(`(?i)\b(EUR|RON|USD|GBP|CHF|LEI)\b`), Clean: cleanCurrency},
		{Pattern: regexp.MustCompile(`([€$£])`), Clean: cleanCurrency},
	},
	constants.FieldCrops: {
		{Pattern: regexp.MustCompile(`(?i)\b(?:crops?|cultures?|culturi|cultivos)\s*[:\-]\s*([^\n;]{3,120})`), Clean: cleanList},
	},
}

// typeBanks hold extra, higher-priority patterns per document type.
var typeBanks = map[constants.DocumentType]map[string][]Rule{
	constants.Registration: {
		constants.FieldCompanyName: {
			{Pattern: regexp.MustCompile(`(?i)\b(?:d[ée]nomination(?: sociale)?|denumire[a]?)\s*[:\-]\s*([^\n,;:]{2,60})`), Clean: cleanName},
		},
		constants.FieldRegistrationDate: {
			{Pattern: regexp.MustCompile(`(?i)\b(?:immatricul[ée]e? le|[îi]nmatriculat[ăa] la)\s*[:\-]?\s*(\d{4}-\d{2}-\d{2}|\d{1,2}[./]\d{1,2}[./]\d{2,4})`), Clean: cleanDate},
		},
	},
	constants.Invoice: {
		constants.FieldTotalAmount: {
			{Pattern: regexp.MustCompile(`(?i)\b(?:amount due|net [àa] payer|total de plat[ăa]|total a pagar)\s*[:\-]?\s*(\d[\d., ]*\d|\d)`), Clean: cleanAmount},
		},
	},
	constants.Certification: {
		constants.FieldRegistrationNumber: {
			{Pattern: regexp.MustCompile(`(?i)\bcertificat(?:e|ul)?\s*(?:no|nr|number)\.?\s*[:\-]?\s*([A-Z0-9][A-Z0-9\-/]{2,18})`), Clean: cleanRegistration},
		},
	},
}

// BankFor assembles the ordered pattern bank for a document type. Overlay
// rules come first so position-based confidence rewards them.
func BankFor(dt constants.DocumentType) map[string][]Rule {
	overlay := typeBanks[dt]
	if overlay == nil {
		return baseBank
	}
	bank := make(map[string][]Rule, len(baseBank))
	for field, rs := range baseBank {
		if extra, ok := overlay[field]; ok {
			merged := make([]Rule, 0, len(extra)+len(rs))
			merged = append(merged, extra...)
			merged = append(merged, rs...)
			bank[field] = merged
		} else {
			bank[field] = rs
		}
	}
	return bank
}
