package database

import (
	"context"

	"github.com/charmbracelet/log"
)

// ProposalWithUser is a proposal row joined with its owner's username, used
// by the admin overview.
type ProposalWithUser struct {
	ID       uint
	Username string
	Proposta string
	Parcela  int
	Banco    string
	Valor    float64
	Tipo     string
	Comissao float64
}

// CreateProposal inserts a single proposal owned by the given user.
func (c *Client) CreateProposal(ctx context.Context, proposal *Proposal) error {
	if err := c.db.WithContext(ctx).Create(proposal).Error; err != nil {
		log.Error("failed to create proposal", "error", err, "user_id", proposal.UserID)
		return err
	}
	return nil
}

// ListProposalsByUser returns the proposals owned by userID in insertion order.
func (c *Client) ListProposalsByUser(ctx context.Context, userID uint) ([]Proposal, error) {
	var proposals []Proposal
	if err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&proposals).Error; err != nil {
		log.Error("failed to list proposals", "error", err, "user_id", userID)
		return nil, err
	}
	return proposals, nil
}

// ListAllProposals returns every proposal joined with its owner's username,
// in insertion order.
func (c *Client) ListAllProposals(ctx context.Context) ([]ProposalWithUser, error) {
	var rows []ProposalWithUser
	if err := c.db.WithContext(ctx).
		Model(&Proposal{}).
		Select("proposals.id, users.username, proposals.proposta, proposals.parcela, proposals.banco, proposals.valor, proposals.tipo, proposals.comissao").
		Joins("JOIN users ON users.id = proposals.user_id AND users.deleted_at IS NULL").
		Order("proposals.id ASC").
		Scan(&rows).Error; err != nil {
		log.Error("failed to list all proposals", "error", err)
		return nil, err
	}
	return rows, nil
}
