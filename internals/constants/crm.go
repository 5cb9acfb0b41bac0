package constants

// ==========================
// Lead statuses
// ==========================
const (
	LeadStatusNew        = "new"
	LeadStatusContacting = "contacting"
	LeadStatusConverted  = "converted"
	LeadStatusDiscarded  = "discarded"
	LeadStatusHold       = "hold"
)

var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacting,
	LeadStatusConverted,
	LeadStatusDiscarded,
	LeadStatusHold,
}

// ==========================
// Deal stages (pipeline order)
// ==========================
const (
	DealStageQualification = "자격확인"
	DealStageProposal      = "제안/견적"
	DealStageNegotiation   = "협상/계약"
	DealStageWon           = "수주"
	DealStageLost          = "실주"
)

// DealStageInitial is the stage every freshly created deal starts in.
const DealStageInitial = DealStageQualification

var DealStages = []string{
	DealStageQualification,
	DealStageProposal,
	DealStageNegotiation,
	DealStageWon,
	DealStageLost,
}

// ==========================
// Daily code tokens
// ==========================
const (
	CodeTokenLead = "-L"
	CodeTokenDeal = "-D"
)
