package models

import (
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"propdesk/database"
)

func money(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// ProposalViewsFromDB converts a user's own proposals for rendering.
func ProposalViewsFromDB(proposals []database.Proposal) []ProposalView {
	return lo.Map(proposals, func(p database.Proposal, _ int) ProposalView {
		return ProposalView{
			ID:       p.ID,
			Proposta: p.Proposta,
			Parcela:  p.Parcela,
			Banco:    p.Banco,
			Valor:    money(p.Valor),
			Tipo:     p.Tipo,
			Comissao: money(p.Comissao),
		}
	})
}

// ProposalViewsFromJoined converts the admin all-proposals join for rendering.
func ProposalViewsFromJoined(proposals []database.ProposalWithUser) []ProposalView {
	return lo.Map(proposals, func(p database.ProposalWithUser, _ int) ProposalView {
		return ProposalView{
			ID:       p.ID,
			Username: p.Username,
			Proposta: p.Proposta,
			Parcela:  p.Parcela,
			Banco:    p.Banco,
			Valor:    money(p.Valor),
			Tipo:     p.Tipo,
			Comissao: money(p.Comissao),
		}
	})
}

// UserViewsFromDB converts user rows for the admin management view.
func UserViewsFromDB(users []database.User) []UserView {
	return lo.Map(users, func(u database.User, _ int) UserView {
		return UserView{
			ID:                u.ID,
			Username:          u.Username,
			IsAdmin:           u.IsAdmin,
			CommissionDefault: money(u.CommissionDefault),
		}
	})
}

// CommissionRateViewsFromDB converts commission rates for rendering.
func CommissionRateViewsFromDB(rates []database.CommissionRateWithUser) []CommissionRateView {
	return lo.Map(rates, func(r database.CommissionRateWithUser, _ int) CommissionRateView {
		return CommissionRateView{
			ID:         r.ID,
			Username:   r.Username,
			Banco:      r.Banco,
			Tipo:       r.Tipo,
			Percentual: money(r.Percentual),
		}
	})
}
