package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/common"
	"github.com/nounish/govscope/contracts"
)

// DAOAdmin interprets governance-parameter administration on the DAO
// governor proxy. Almost everything here is a setter; the interesting policy
// is presentation (basis points as percentages, block counts as durations)
// and flagging the handful of authority-moving functions as critical.
type DAOAdmin struct {
	base
}

func NewDAOAdmin(dir *contracts.Directory) *DAOAdmin {
	return &DAOAdmin{newBase(dir, contracts.DAOProxyAddress,
		"Nouns DAO Governor", "Proposal lifecycle and governance parameter administration",
		abis.DAOAdmin(), CategoryGovernance, map[string]string{
			"_setVotingDelay":          "Blocks between proposal creation and voting start",
			"_setVotingPeriod":         "Blocks a proposal stays open for voting",
			"_setProposalThresholdBPS": "Votes needed to create a proposal, in basis points of supply",
			"_setMinQuorumVotesBPS":    "Lower bound of the dynamic quorum",
			"_setMaxQuorumVotesBPS":    "Upper bound of the dynamic quorum",
			"_setQuorumCoefficient":    "Curvature of the dynamic quorum function",
			"_setForkPeriod":           "Seconds the fork window stays open",
			"_setForkThresholdBPS":     "Nouns needed to trigger a fork, in basis points of supply",
			"_setPendingAdmin":         "Nominate a new governor admin",
			"_acceptAdmin":             "Accept the pending governor admin role",
			"_setVetoer":               "Move the veto power to a new address",
			"_burnVetoPower":           "Remove the veto power permanently",
		})}
}

func (d *DAOAdmin) Interpret(c TxContext) *InterpretedTx {
	return d.interpretWith(c, d.dispatch)
}

func (d *DAOAdmin) ExtractAddresses(c TxContext) []string {
	return d.Interpret(c).AddressesToResolve
}

// Setter display names for summaries, by function.
var daoSetterLabels = map[string]string{
	"_setVotingDelay":                     "voting delay",
	"_setVotingPeriod":                    "voting period",
	"_setObjectionPeriodDurationInBlocks": "objection period",
	"_setLastMinuteWindowInBlocks":        "last-minute window",
	"_setProposalUpdatablePeriodInBlocks": "proposal updatable period",
	"_setProposalThresholdBPS":            "proposal threshold",
	"_setMinQuorumVotesBPS":               "min quorum",
	"_setMaxQuorumVotesBPS":               "max quorum",
	"_setForkThresholdBPS":                "fork threshold",
}

func (d *DAOAdmin) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "_setProposalThresholdBPS", "_setMinQuorumVotesBPS", "_setMaxQuorumVotesBPS", "_setForkThresholdBPS":
		pct := common.FormatBPS(fn.bigAt(0))
		d.formatFirstParam(fn, pct, FormatPercentage)
		summary := fmt.Sprintf("Set the %s to %s", daoSetterLabels[fn.Name], pct)
		return d.assemble(c, fn, summary, CategoryGovernance, SeverityNormal)

	case "_setVotingDelay", "_setVotingPeriod", "_setObjectionPeriodDurationInBlocks",
		"_setLastMinuteWindowInBlocks", "_setProposalUpdatablePeriodInBlocks":
		blocks := fn.bigAt(0)
		duration := common.FormatBlockDuration(blocks)
		d.formatFirstParam(fn, duration, FormatDuration)
		summary := fmt.Sprintf("Set the %s to %s blocks (%s)",
			daoSetterLabels[fn.Name], common.GroupDigits(blocks.String()), duration)
		return d.assemble(c, fn, summary, CategoryGovernance, SeverityNormal)

	case "_setForkPeriod":
		duration := common.FormatSecondsAsHours(fn.bigAt(0))
		d.formatFirstParam(fn, duration, FormatDuration)
		summary := fmt.Sprintf("Set the fork period to %s", duration)
		return d.assemble(c, fn, summary, CategoryGovernance, SeverityNormal)

	case "_setQuorumCoefficient":
		summary := fmt.Sprintf("Set the quorum coefficient to %s", fn.bigAt(0).String())
		return d.assemble(c, fn, summary, CategoryConfiguration, SeverityNormal)

	case "_setPendingAdmin":
		summary := fmt.Sprintf("Nominate %s as governor admin", d.recipientDisplay(fn, 0))
		return d.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "_acceptAdmin":
		return d.assemble(c, fn, "Accept the governor admin role", CategoryOwnership, SeverityCritical)

	case "_setVetoer":
		summary := fmt.Sprintf("Move the veto power to %s", d.recipientDisplay(fn, 0))
		return d.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "_burnVetoPower":
		return d.assemble(c, fn, "Burn the veto power permanently", CategoryGovernance, SeverityCritical)
	}
	return nil
}

// formatFirstParam rewrites the display of the setter's single argument.
func (d *DAOAdmin) formatFirstParam(fn *call, display string, format ParamFormat) {
	if len(fn.Params) > 0 {
		fn.Params[0].DisplayValue = display
		fn.Params[0].Format = format
	}
}
