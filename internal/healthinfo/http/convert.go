package http

import (
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
)

func toProgram(p domain.Program) healthsdk.Program {
	return healthsdk.Program{ID: p.ID, Name: p.Name}
}

func toClient(c domain.Client) healthsdk.Client {
	return healthsdk.Client{ID: c.ID, Name: c.Name, DOB: c.DOB}
}

// Lists are never encoded as null.
func toPrograms(ps []domain.Program) []healthsdk.Program {
	out := make([]healthsdk.Program, len(ps))
	for i, p := range ps {
		out[i] = toProgram(p)
	}
	return out
}

func toClients(cs []domain.Client) []healthsdk.Client {
	out := make([]healthsdk.Client, len(cs))
	for i, c := range cs {
		out[i] = toClient(c)
	}
	return out
}

func toClientDetail(d domain.ClientDetail) healthsdk.ClientDetail {
	return healthsdk.ClientDetail{
		ID:       d.ID,
		Name:     d.Name,
		DOB:      d.DOB,
		Programs: toPrograms(d.Programs),
	}
}
