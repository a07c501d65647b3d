package extractor

import (
	"fmt"

	"qa-insights-go/internal/types"
)

// BuildPrompt builds the campaign-specific QA analysis prompt for one transcript.
func BuildPrompt(campaign types.Campaign, transcript string) string {
	if campaign == types.CampaignBanking {
		return fmt.Sprintf(bankingPrompt, transcript)
	}
	return fmt.Sprintf(internetCablePrompt, transcript)
}

const commonSchema = `
{
  "callDetails": {"agentName": "", "callId": "", "callDuration": "MM:SS", "callDateTime": "ISO 8601"},
  "summary": "",
  "callType": "",
  "rootCause": "",
  "customerSentiment": {"positivePercentage": 0, "negativePercentage": 0, "positiveCount": 0, "negativeCount": 0},
  "holdOrSilenceCount": 0,
  "agentPerformance": {"corePillars": %s},
  "resolution": {"issueResolved": false, "resolutionLanguage": null, "reasonCategory": "", "reasonDetail": ""},
  "understandabilityIssues": {
    "notUnderstandingInfo": {"detected": false, "samplePhrase": null},
    "audioVolume": {"detected": false, "samplePhrase": null},
    "clarityOfSpeech": {"detected": false, "samplePhrase": null}
  },
  %s
  "overallFindings": {"opportunities": "", "recommendations": ""},
  "agentBehaviorComplaint": {"detected": false, "customerComplaintQuote": null},
  "agentCommendation": {"detected": false, "customerPraiseQuote": null}
}`

var internetCableSchema = fmt.Sprintf(commonSchema,
	`{
    "procedureFlow": {"adherenceScore": 0, "keySteps": [{"stepName": "", "completed": false, "details": ""}], "deviations": [], "efficiencyGains": ""},
    "ownership": {"ownershipScore": 0, "suggestedPhrases": [], "missedOpportunities": ""},
    "empathy": {"empathyScore": 0, "suggestedPhrases": [], "sentimentAlignment": ""}
  }`,
	`"troubleshootingFlow": [],
  "isRepeatCall": false,`)

var bankingSchema = fmt.Sprintf(commonSchema,
	`{
    "accountVerification": {"clientNameVerified": false, "verificationScore": 0, "staticQuestionsAsked": 0, "nonStaticQuestionsAsked": 0, "passedVerification": false, "verificationDetails": ""},
    "empathy": {"empathyScore": 0, "suggestedPhrases": [], "sentimentAlignment": ""}
  }`,
	`"securityVerificationAsked": [],`)

var internetCablePrompt = `You are an expert call center quality assurance analyst for an Internet & Cable provider.

Score the call on three mandatory pillars, each 0-100:
1. Procedure Flow: did the agent follow the prescribed troubleshooting steps correctly and in a logical order,
   either resolving the issue or correctly escalating it (for example a technician visit)?
2. Ownership: did the agent take charge of the problem with proactive, assuring language?
   Give 1-2 phrases they could have used.
3. Empathy: did the agent show they understood the customer's frustration? Politeness is not empathy.
   Give 1-2 phrases they could have used.

Issue resolution on the first call is the top priority. resolution.reasonCategory must be short and
resolution.reasonDetail must state the technical outcome clearly. List the troubleshooting steps the agent
walked the customer through, in order, in troubleshootingFlow.

Return ONLY valid JSON matching this schema. No commentary, no markdown fences.
` + internetCableSchema + `

Transcript:
---
%s
---
`

var bankingPrompt = `You are an expert call center quality assurance analyst for a bank.

First decide whether the call is an Account-Specific Inquiry (balance checks, transactions, card reports)
or a General Inquiry (branch locations, website help, product questions). A name request without an explicit
security phrase and without further verification questions indicates a General Inquiry.

For a General Inquiry, OMIT accountVerification entirely and do not mention verification in the findings.
For an Account-Specific Inquiry, score accountVerification.verificationScore 100 only when the agent asked the
client's name, used an explicit security phrase, and asked at least 2 static and 2 non-static questions;
otherwise 0. A phone number is not a verification question. List the verification questions asked, in order,
in securityVerificationAsked.

Score empathy 0-100 and give 1-2 phrases the agent could have used. resolution.reasonCategory and
resolution.reasonDetail are mandatory.

Return ONLY valid JSON matching this schema. No commentary, no markdown fences.
` + bankingSchema + `

Transcript:
---
%s
---
`
