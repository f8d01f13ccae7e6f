// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lexicon

import "strings"

// synsets maps a surface form to its lemmas. Multi-word lemmas are stored
// with underscores and converted to spaces on lookup. The table covers the
// general and legal vocabulary that appears in clause queries; words outside
// the table simply expand to nothing.
var synsets = map[string][]string{
	"custody":        {"custody", "detention", "hands", "guardianship"},
	"children":       {"child", "kid", "minor", "offspring"},
	"child":          {"kid", "minor", "youngster", "offspring"},
	"payment":        {"payment", "defrayal", "requital", "remuneration"},
	"pay":            {"pay", "compensate", "remunerate", "salary"},
	"money":          {"money", "funds", "payment"},
	"terminate":      {"terminate", "end", "cancel", "discontinue"},
	"termination":    {"termination", "expiration", "ending", "closdown"},
	"ending":         {"ending", "conclusion", "termination"},
	"cancel":         {"cancel", "invalidate", "annul", "call_off"},
	"expire":         {"expire", "run_out", "lapse"},
	"responsible":    {"responsible", "accountable", "liable", "answerable"},
	"liable":         {"liable", "responsible", "apt"},
	"liability":      {"liability", "indebtedness", "financial_obligation"},
	"obligation":     {"obligation", "duty", "responsibility", "indebtedness"},
	"duty":           {"duty", "responsibility", "obligation"},
	"confidential":   {"confidential", "secret", "private"},
	"secret":         {"secret", "confidential", "undisclosed"},
	"privacy":        {"privacy", "secrecy", "confidentiality"},
	"dispute":        {"dispute", "difference", "conflict", "controversy"},
	"conflict":       {"conflict", "struggle", "dispute"},
	"agreement":      {"agreement", "understanding", "accord", "contract"},
	"contract":       {"contract", "agreement", "compact"},
	"lease":          {"lease", "rental", "letting", "term_of_a_contract"},
	"rent":           {"rent", "rental", "lease"},
	"deposit":        {"deposit", "sedimentation", "down_payment"},
	"notice":         {"notice", "notification", "observance"},
	"deadline":       {"deadline", "due_date", "time_limit"},
	"penalty":        {"penalty", "punishment", "forfeit"},
	"damages":        {"damages", "compensation", "indemnity", "restitution"},
	"compensation":   {"compensation", "recompense", "payment", "remuneration"},
	"breach":         {"breach", "violation", "infraction", "falling_out"},
	"violation":      {"violation", "misdemeanor", "infringement", "breach"},
	"court":          {"court", "tribunal", "judicature"},
	"judge":          {"judge", "justice", "magistrate"},
	"property":       {"property", "belongings", "holding", "attribute"},
	"ownership":      {"ownership", "possession", "willpower"},
	"insurance":      {"insurance", "indemnity", "policy"},
	"warranty":       {"warranty", "guarantee", "warrantee"},
	"guarantee":      {"guarantee", "warrant", "assurance", "vouch"},
	"indemnity":      {"indemnity", "insurance", "amends", "damages"},
	"arbitration":    {"arbitration", "arbitrament", "mediation"},
	"jurisdiction":   {"jurisdiction", "legal_power", "venue"},
	"amendment":      {"amendment", "modification", "revision"},
	"assignment":     {"assignment", "transfer", "grant", "designation"},
	"severance":      {"severance", "rupture", "breakup"},
	"visitation":     {"visitation", "visit", "access"},
	"support":        {"support", "upkeep", "maintenance", "sustenance"},
	"maintenance":    {"maintenance", "upkeep", "alimony", "care"},
	"fee":            {"fee", "tip", "charge"},
	"interest":       {"interest", "stake", "involvement"},
	"salary":         {"salary", "wage", "pay", "remuneration"},
	"wages":          {"wages", "pay", "earnings", "remuneration"},
	"disclose":       {"disclose", "reveal", "divulge", "expose"},
	"disclosure":     {"disclosure", "revelation", "revealing"},
	"party":          {"party", "company", "side"},
	"spouse":         {"spouse", "partner", "married_person", "better_half"},
	"divorce":        {"divorce", "dissolution", "separation"},
	"inheritance":    {"inheritance", "heritage", "bequest", "legacy"},
	"will":           {"will", "testament", "volition"},
	"estate":         {"estate", "land", "demesne"},
	"tax":            {"tax", "taxation", "revenue_enhancement"},
	"mortgage":       {"mortgage", "security_interest"},
	"loan":           {"loan", "lend", "credit"},
	"debt":           {"debt", "indebtedness", "liability"},
	"default":        {"default", "nonpayment", "nonremittal"},
	"renewal":        {"renewal", "reclamation", "replacement"},
	"clause":         {"clause", "article", "provision"},
	"section":        {"section", "subdivision", "segment"},
	"paragraph":      {"paragraph", "passage"},
	"schedule":       {"schedule", "agenda", "docket"},
	"exhibit":        {"exhibit", "attachment", "display"},
	"confidentiality": {"confidentiality", "secrecy", "privacy"},
	"nondisclosure":  {"nondisclosure", "secrecy", "non_disclosure"},
}

// Synonyms returns the lemmas for word whose surface form differs from the
// word itself, with underscores replaced by spaces. Returns nil for words
// outside the table.
func Synonyms(word string) []string {
	lemmas, ok := synsets[word]
	if !ok {
		return nil
	}

	var out []string
	for _, lemma := range lemmas {
		if lemma == word {
			continue
		}
		out = append(out, strings.ReplaceAll(lemma, "_", " "))
	}
	return out
}

// legalConcepts maps each canonical legal concept to its variation list.
// A variation appearing as a substring of a query keyword triggers expansion
// with the whole list.
var legalConcepts = map[string][]string{
	"custody":               {"custody", "guardianship", "care", "supervision", "parental rights"},
	"payment":               {"payment", "compensation", "salary", "wages", "remuneration", "fee"},
	"termination":           {"termination", "ending", "conclusion", "expiration", "cancellation"},
	"liability":             {"liability", "responsibility", "accountability", "obligation", "duty"},
	"confidentiality":       {"confidentiality", "privacy", "secrecy", "non-disclosure", "proprietary"},
	"dispute":               {"dispute", "conflict", "disagreement", "controversy", "litigation"},
	"jurisdiction":          {"jurisdiction", "venue", "court", "legal authority", "competent court"},
	"force_majeure":         {"force majeure", "act of god", "unforeseen circumstances", "emergency"},
	"intellectual_property": {"intellectual property", "patent", "copyright", "trademark", "ip"},
	"indemnification":       {"indemnification", "indemnity", "protection", "compensation", "reimbursement"},
}

// Concepts returns the canonical legal concept names.
func Concepts() []string {
	out := make([]string, 0, len(legalConcepts))
	for concept := range legalConcepts {
		out = append(out, concept)
	}
	return out
}

// Variations returns the variation list for a canonical legal concept, or
// nil if the concept is unknown. The returned slice must not be mutated.
func Variations(concept string) []string {
	return legalConcepts[concept]
}

// EachConcept calls fn for every (concept, variations) pair in the
// thesaurus. Iteration order is unspecified.
func EachConcept(fn func(concept string, variations []string)) {
	for concept, variations := range legalConcepts {
		fn(concept, variations)
	}
}
