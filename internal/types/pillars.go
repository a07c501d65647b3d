package types

import "encoding/json"

type ProcedureStep struct {
	StepName  string `json:"stepName"`
	Completed bool   `json:"completed"`
	Details   string `json:"details"`
}

type ProcedureFlow struct {
	AdherenceScore  int             `json:"adherenceScore"`
	KeySteps        []ProcedureStep `json:"keySteps,omitempty"`
	Deviations      []string        `json:"deviations"`
	EfficiencyGains string          `json:"efficiencyGains"`
}

type Ownership struct {
	OwnershipScore      int      `json:"ownershipScore"`
	SuggestedPhrases    []string `json:"suggestedPhrases"`
	MissedOpportunities string   `json:"missedOpportunities"`
}

type Empathy struct {
	EmpathyScore       int      `json:"empathyScore"`
	SuggestedPhrases   []string `json:"suggestedPhrases"`
	SentimentAlignment string   `json:"sentimentAlignment"`
}

type AccountVerification struct {
	ClientNameVerified      bool   `json:"clientNameVerified"`
	VerificationScore       int    `json:"verificationScore"`
	StaticQuestionsAsked    int    `json:"staticQuestionsAsked"`
	NonStaticQuestionsAsked int    `json:"nonStaticQuestionsAsked"`
	PassedVerification      bool   `json:"passedVerification"`
	VerificationDetails     string `json:"verificationDetails"`
}

// CorePillars is the campaign-shaped set of scored pillars for one call.
// It is one of InternetCablePillars, BankingPillars or GeneralInquiryPillars.
type CorePillars interface {
	EmpathyPillar() Empathy
	isCorePillars()
}

// InternetCablePillars scores procedure flow, ownership and empathy.
type InternetCablePillars struct {
	ProcedureFlow ProcedureFlow
	Ownership     Ownership
	Empathy       Empathy
}

// BankingPillars scores account verification and empathy for account-specific calls.
type BankingPillars struct {
	AccountVerification AccountVerification
	Empathy             Empathy
}

// GeneralInquiryPillars carries only empathy; the call has no comparably scored pillar.
type GeneralInquiryPillars struct {
	Empathy Empathy
}

func (p InternetCablePillars) EmpathyPillar() Empathy  { return p.Empathy }
func (p BankingPillars) EmpathyPillar() Empathy        { return p.Empathy }
func (p GeneralInquiryPillars) EmpathyPillar() Empathy { return p.Empathy }

func (InternetCablePillars) isCorePillars()  {}
func (BankingPillars) isCorePillars()        {}
func (GeneralInquiryPillars) isCorePillars() {}

// NewCorePillars picks the variant from which pillars are present.
// procedureFlow and ownership together win over accountVerification.
func NewCorePillars(pf *ProcedureFlow, own *Ownership, av *AccountVerification, emp Empathy) CorePillars {
	switch {
	case pf != nil && own != nil:
		return InternetCablePillars{ProcedureFlow: *pf, Ownership: *own, Empathy: emp}
	case av != nil:
		return BankingPillars{AccountVerification: *av, Empathy: emp}
	default:
		return GeneralInquiryPillars{Empathy: emp}
	}
}

type AgentPerformance struct {
	CorePillars CorePillars

	// Pillars present on the wire that the chosen variant does not carry.
	stray strayPillars
}

type strayPillars struct {
	procedureFlow       *ProcedureFlow
	ownership           *Ownership
	accountVerification *AccountVerification
}

// Pillars never returns nil; a zero AgentPerformance is an unscored general inquiry.
func (a AgentPerformance) Pillars() CorePillars {
	if a.CorePillars == nil {
		return GeneralInquiryPillars{}
	}
	return a.CorePillars
}

// ProcedureFlow returns the procedure flow pillar when the call has one.
func (a AgentPerformance) ProcedureFlow() (ProcedureFlow, bool) {
	if p, ok := a.Pillars().(InternetCablePillars); ok {
		return p.ProcedureFlow, true
	}
	if a.stray.procedureFlow != nil {
		return *a.stray.procedureFlow, true
	}
	return ProcedureFlow{}, false
}

// Ownership returns the ownership pillar when the call has one.
func (a AgentPerformance) Ownership() (Ownership, bool) {
	if p, ok := a.Pillars().(InternetCablePillars); ok {
		return p.Ownership, true
	}
	if a.stray.ownership != nil {
		return *a.stray.ownership, true
	}
	return Ownership{}, false
}

// AccountVerification returns the verification pillar when the call has one.
func (a AgentPerformance) AccountVerification() (AccountVerification, bool) {
	if p, ok := a.Pillars().(BankingPillars); ok {
		return p.AccountVerification, true
	}
	if a.stray.accountVerification != nil {
		return *a.stray.accountVerification, true
	}
	return AccountVerification{}, false
}

// corePillarsJSON is the wire shape: optional pillars keyed by name.
type corePillarsJSON struct {
	ProcedureFlow       *ProcedureFlow       `json:"procedureFlow,omitempty"`
	Ownership           *Ownership           `json:"ownership,omitempty"`
	Empathy             Empathy              `json:"empathy"`
	AccountVerification *AccountVerification `json:"accountVerification,omitempty"`
}

type agentPerformanceJSON struct {
	CorePillars corePillarsJSON `json:"corePillars"`
}

func (a AgentPerformance) MarshalJSON() ([]byte, error) {
	var w corePillarsJSON
	switch p := a.Pillars().(type) {
	case InternetCablePillars:
		w.ProcedureFlow = &p.ProcedureFlow
		w.Ownership = &p.Ownership
		w.Empathy = p.Empathy
	case BankingPillars:
		w.AccountVerification = &p.AccountVerification
		w.Empathy = p.Empathy
	case GeneralInquiryPillars:
		w.Empathy = p.Empathy
	}
	if w.ProcedureFlow == nil {
		w.ProcedureFlow = a.stray.procedureFlow
	}
	if w.Ownership == nil {
		w.Ownership = a.stray.ownership
	}
	if w.AccountVerification == nil {
		w.AccountVerification = a.stray.accountVerification
	}
	return json.Marshal(agentPerformanceJSON{CorePillars: w})
}

func (a *AgentPerformance) UnmarshalJSON(data []byte) error {
	var w agentPerformanceJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	cp := w.CorePillars
	a.CorePillars = NewCorePillars(cp.ProcedureFlow, cp.Ownership, cp.AccountVerification, cp.Empathy)
	a.stray = strayPillars{}
	switch a.CorePillars.(type) {
	case InternetCablePillars:
		a.stray.accountVerification = cp.AccountVerification
	case BankingPillars:
		a.stray.procedureFlow = cp.ProcedureFlow
		a.stray.ownership = cp.Ownership
	default:
		a.stray.procedureFlow = cp.ProcedureFlow
		a.stray.ownership = cp.Ownership
	}
	return nil
}
