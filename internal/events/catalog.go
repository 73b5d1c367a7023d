package events

import (
	"fmt"

	"github.com/graceworks/steeple/internal/entropy"
)

// Catalog is the fixed event template set, evaluated in order each week.
var Catalog = []*Template{
	// Positive
	{
		ID: "anonymousDonation", Type: TypePositive,
		Title:       "Anonymous Donation",
		Description: "An anonymous donor has given a generous gift to the church!",
		Probability: 0.05,
		Conditions:  Conditions{MinWeek: 4},
		Immediate: func(r *entropy.Rand) Outcome {
			amount := r.Range(500, 2000)
			return Outcome{
				Ops:     []Op{{Kind: OpBudget, Amount: amount}},
				Message: fmt.Sprintf("You received an anonymous donation of $%d!", amount),
			}
		},
	},
	{
		ID: "mediaAttention", Type: TypePositive,
		Title:       "Media Attention",
		Description: "Local news wants to feature your church's community outreach!",
		Probability: 0.03,
		Conditions:  Conditions{MinReputation: 60, MinWeek: 8},
		Immediate: func(r *entropy.Rand) Outcome {
			return Outcome{
				Ops:     []Op{{Kind: OpReputation, Amount: 10}},
				Message: "The news coverage boosted your reputation by 10!",
			}
		},
	},
	{
		ID: "skilledVolunteer", Type: TypePositive,
		Title:       "Skilled Volunteer",
		Description: "A talented church member wants to volunteer their professional skills!",
		Probability: 0.04,
		Conditions:  Conditions{MinAttendance: 60},
		Immediate: func(r *entropy.Rand) Outcome {
			return Outcome{
				Ops: []Op{
					{Kind: OpMorale, Amount: 5},
					{Kind: OpMaintenanceRelief, Amount: 25},
				},
				Message: "Their help saves $25/week on maintenance and boosts morale!",
			}
		},
	},

	// Negative
	{
		ID: "buildingIssue", Type: TypeNegative,
		Title:       "Building Emergency",
		Description: "A pipe burst in the church building! Repairs are needed immediately.",
		Probability: 0.04,
		Conditions:  Conditions{MinWeek: 3},
		Immediate: func(r *entropy.Rand) Outcome {
			cost := r.Range(300, 800)
			return Outcome{
				Ops:     []Op{{Kind: OpBudget, Amount: -cost}},
				Message: fmt.Sprintf("Emergency repairs cost $%d.", cost),
			}
		},
	},
	{
		ID: "keyFamilyUnhappy", Type: TypeNegative,
		Title:       "Unhappy Family",
		Description: "A key family in the congregation is expressing dissatisfaction.",
		Probability: 0.05,
		Conditions:  Conditions{MinAttendance: 40},
		Immediate: func(r *entropy.Rand) Outcome {
			return Outcome{
				Ops:     []Op{{Kind: OpMorale, Amount: -8}},
				Message: "Congregation morale dropped by 8. Try to address their concerns!",
			}
		},
	},
	{
		ID: "gossipSpreading", Type: TypeNegative,
		Title:       "Gossip Spreading",
		Description: "Rumors are circulating about recent church decisions.",
		Probability: 0.06,
		Conditions:  Conditions{MinWeek: 6},
		Immediate: func(r *entropy.Rand) Outcome {
			return Outcome{
				Ops: []Op{
					{Kind: OpReputation, Amount: -5},
					{Kind: OpMorale, Amount: -3},
				},
				Message: "Reputation -5, Morale -3. Address this before it escalates!",
			}
		},
	},

	// Choice
	{
		ID: "collaborationRequest", Type: TypeChoice,
		Title:       "Collaboration Opportunity",
		Description: "Another local church wants to partner on a community outreach event.",
		Probability: 0.04,
		Conditions:  Conditions{MinReputation: 40, MinWeek: 5},
		Choices: []Choice{
			{
				ID: "accept", Text: "Accept the partnership",
				Description: "Costs $200 but increases reputation",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpBudget, Amount: -200},
							{Kind: OpReputation, Amount: 8},
							{Kind: OpOutreach, Amount: 10},
						},
						Message: "The partnership was a success! Reputation +8, Outreach +10.",
					}
				},
			},
			{
				ID: "decline", Text: "Politely decline",
				Description: "No cost, but miss the opportunity",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{Message: "You declined the offer. Perhaps another time."}
				},
			},
		},
	},
	{
		ID: "buildingRental", Type: TypeChoice,
		Title:       "Building Rental Request",
		Description: "A community group wants to rent your building for a secular event.",
		Probability: 0.05,
		Conditions:  Conditions{MinWeek: 4},
		Choices: []Choice{
			{
				ID: "accept", Text: "Allow the rental ($150)",
				Description: "Earn money but some members may disapprove",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpBudget, Amount: 150},
							{Kind: OpMorale, Amount: -3},
							{Kind: OpOutreach, Amount: 5},
						},
						Message: "Earned $150! Some members are uneasy, but community ties improved.",
					}
				},
			},
			{
				ID: "decline", Text: "Decline the request",
				Description: "Keep members happy, miss the income",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpMorale, Amount: 2}},
						Message: "Members appreciate keeping the building for church use only.",
					}
				},
			},
		},
	},
	{
		ID: "staffConflict", Type: TypeChoice,
		Title:       "Staff Disagreement",
		Description: "Two staff members are in conflict over ministry direction.",
		Probability: 0.06,
		Conditions:  Conditions{MinStaff: 2},
		Choices: []Choice{
			{
				ID: "sideA", Text: "Side with the senior staff member",
				Description: "May upset the other staff member",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpStaffMorale, StaffIndex: 0, Amount: 10},
							{Kind: OpStaffMorale, StaffIndex: 1, Amount: -15},
						},
						Message: "The senior staff member is pleased, but the other feels overlooked.",
					}
				},
			},
			{
				ID: "sideB", Text: "Side with the newer staff member",
				Description: "Shows you value fresh ideas",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpStaffMorale, StaffIndex: 0, Amount: -15},
							{Kind: OpStaffMorale, StaffIndex: 1, Amount: 10},
						},
						Message: "The newer staff member feels validated. The senior staff is frustrated.",
					}
				},
			},
			{
				ID: "compromise", Text: "Mandate a compromise",
				Description: "Neither fully happy, but workable",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpStaffMorale, StaffIndex: -1, Amount: -5}},
						Message: "Both staff accepted the compromise, though neither is thrilled.",
					}
				},
			},
			{
				ID: "letResolve", Text: "Let them work it out",
				Description: "May resolve naturally or escalate",
				Effect: func(r *entropy.Rand) Outcome {
					if r.Chance(0.5) {
						return Outcome{
							Ops:     []Op{{Kind: OpMorale, Amount: 3}},
							Message: "They worked it out themselves! Team spirit improved.",
						}
					}
					return Outcome{
						Ops: []Op{
							{Kind: OpStaffMorale, StaffIndex: -1, Amount: -10},
							{Kind: OpMorale, Amount: -5},
						},
						Message: "The conflict escalated. Staff morale dropped significantly.",
					}
				},
			},
		},
	},
	{
		ID: "memberCrisis", Type: TypeChoice,
		Title:       "Member in Crisis",
		Description: "A congregation member is going through a difficult time and needs significant pastoral care.",
		Probability: 0.05,
		Conditions:  Conditions{MinAttendance: 30},
		Choices: []Choice{
			{
				ID: "fullSupport", Text: "Provide full support (10+ hours this week)",
				Description: "Deep investment but other things suffer",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpMorale, Amount: 8},
							{Kind: OpReputation, Amount: 3},
							{Kind: OpOutreach, Amount: -5},
						},
						Message: "Your dedicated care made a real difference. The congregation notices your compassion.",
					}
				},
			},
			{
				ID: "moderate", Text: "Provide moderate support",
				Description: "Balance care with other responsibilities",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpMorale, Amount: 3}},
						Message: "You provided meaningful support while maintaining balance.",
					}
				},
			},
			{
				ID: "referOut", Text: "Refer to professional counseling",
				Description: "Professional help, but feels less personal",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpBudget, Amount: -100}},
						Message: "You connected them with professional help (-$100 for referral assistance).",
					}
				},
			},
		},
	},
	{
		ID: "largeDonorOffer", Type: TypeChoice,
		Title:       "Major Donor Offer",
		Description: "A wealthy visitor offers a large donation, but wants naming rights to the fellowship hall.",
		Probability: 0.02,
		Conditions:  Conditions{MinWeek: 10, MinReputation: 50},
		Choices: []Choice{
			{
				ID: "accept", Text: "Accept the offer ($5,000)",
				Description: "Big money, but some see it as selling out",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops: []Op{
							{Kind: OpBudget, Amount: 5000},
							{Kind: OpMorale, Amount: -10},
							{Kind: OpReputation, Amount: 5},
						},
						Message: "You received $5,000! The \"Smith Fellowship Hall\" sign goes up. Some members grumble.",
					}
				},
			},
			{
				ID: "negotiate", Text: "Negotiate (smaller donation, no naming)",
				Description: "Try to find middle ground",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpBudget, Amount: 1500}},
						Message: "The donor agreed to $1,500 without naming rights. A fair compromise.",
					}
				},
			},
			{
				ID: "decline", Text: "Politely decline",
				Description: "Maintain principles, miss the funding",
				Effect: func(r *entropy.Rand) Outcome {
					return Outcome{
						Ops:     []Op{{Kind: OpMorale, Amount: 5}},
						Message: "Members respect your decision to keep the church's integrity. Morale +5.",
					}
				},
			},
		},
	},
}
