package models

// User is the session-scoped identity attached to every authenticated request.
type User struct {
	ID       uint
	Username string
	IsAdmin  bool
}

// ProposalView is a proposal prepared for rendering.
type ProposalView struct {
	ID       uint
	Username string
	Proposta string
	Parcela  int
	Banco    string
	Valor    string
	Tipo     string
	Comissao string
}

// UserView is a user row prepared for the admin management view.
type UserView struct {
	ID                uint
	Username          string
	IsAdmin           bool
	CommissionDefault string
}

// CommissionRateView is a commission rate prepared for rendering.
type CommissionRateView struct {
	ID         uint
	Username   string
	Banco      string
	Tipo       string
	Percentual string
}

// ProposalTipos are the proposal categories offered by the submission form.
// Free text is still accepted on the wire; the list only drives the dropdown.
var ProposalTipos = []string{
	"novo",
	"refinanciamento",
	"portabilidade",
	"refin_portabilidade",
	"refin_carteira",
	"fgts",
	"clt",
	"outros",
}
