package explorer

import (
	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/app/loader"
	"github.com/ledgerscope/explorer/internal/core"
)

// NewNodesLoader loads every network node by following /network/nodes pages.
func NewNodesLoader(m app.MirrorService) *loader.BatchLoader[*core.NetworkNodesResponse] {
	return &loader.BatchLoader[*core.NetworkNodesResponse]{
		LoadNext: m.GetNetworkNodes,
		Merge: func(acc, page *core.NetworkNodesResponse) *core.NetworkNodesResponse {
			return &core.NetworkNodesResponse{
				Nodes: append(append([]*core.NetworkNode(nil), acc.Nodes...), page.Nodes...),
				Links: page.Links,
			}
		},
		NextLink: func(page *core.NetworkNodesResponse) *string {
			return page.Links.Next
		},
	}
}
