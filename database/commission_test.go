package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CommissionSuite struct {
	suite.Suite
	client *Client
	ctx    context.Context
	joe    *User
}

func (s *CommissionSuite) SetupTest() {
	client, err := New(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.client = client
	s.ctx = context.Background()

	s.joe, err = client.CreateUser(s.ctx, "joe", "x", false, 0)
	s.Require().NoError(err)
}

func (s *CommissionSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *CommissionSuite) TestUpsertKeepsSingleRow() {
	first := &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "novo", Percentual: 2.5}
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, first))

	second := &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "novo", Percentual: 3.0}
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, second))

	rates, err := s.client.ListCommissionRates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rates, 1)
	s.Equal(3.0, rates[0].Percentual)
	s.Equal("joe", rates[0].Username)
}

func (s *CommissionSuite) TestDistinctCombinationsCoexist() {
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "novo", Percentual: 2.5}))
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "fgts", Percentual: 4.0}))
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, &CommissionRate{UserID: s.joe.ID, Banco: "BankB", Tipo: "novo", Percentual: 1.0}))

	rates, err := s.client.ListCommissionRates(s.ctx)
	s.Require().NoError(err)
	s.Len(rates, 3)
}

func (s *CommissionSuite) TestGetCommissionRate() {
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "novo", Percentual: 2.5}))

	rate, err := s.client.GetCommissionRate(s.ctx, s.joe.ID, "BankA", "novo")
	s.Require().NoError(err)
	s.Require().NotNil(rate)
	s.Equal(2.5, rate.Percentual)

	rate, err = s.client.GetCommissionRate(s.ctx, s.joe.ID, "BankA", "fgts")
	s.Require().NoError(err)
	s.Nil(rate)
}

func (s *CommissionSuite) TestDeleteCommissionRate() {
	rate := &CommissionRate{UserID: s.joe.ID, Banco: "BankA", Tipo: "novo", Percentual: 2.5}
	s.Require().NoError(s.client.UpsertCommissionRate(s.ctx, rate))

	s.Require().NoError(s.client.DeleteCommissionRate(s.ctx, rate.ID))

	rates, err := s.client.ListCommissionRates(s.ctx)
	s.Require().NoError(err)
	s.Empty(rates)
}

func TestCommissionSuite(t *testing.T) {
	suite.Run(t, new(CommissionSuite))
}
