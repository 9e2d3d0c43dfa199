package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a table.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// rpcQuickMatch finds a table with an open seat or creates a new one.
func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	// Search for matches with at least one open seat.
	// +label.open filters on the "open" key in the JSON match label.
	limit := 1
	authoritative := true
	labelQuery := fmt.Sprintf("+label.%s:>=1", MatchLabelKey_OpenSeats)
	minSize := 0
	maxSize := 4

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, labelQuery)
	if err != nil {
		logger.Error("rpcQuickMatch [User:%s]: Failed to list matches: %v", userId, err)
		return "", err
	}

	if len(matches) > 0 {
		matchId := matches[0].MatchId
		logger.Info("rpcQuickMatch [User:%s]: Found existing match %s", userId, matchId)
		resp, _ := json.Marshal(QuickMatchResponse{MatchID: matchId, IsNew: false})
		return string(resp), nil
	}

	// No open table; create one. Seat and owner assignment happen in
	// MatchJoin (server-authoritative).
	matchId, err := nk.MatchCreate(ctx, MatchNameCinch, nil)
	if err != nil {
		logger.Error("rpcQuickMatch [User:%s]: Failed to create match: %v", userId, err)
		return "", err
	}

	logger.Info("rpcQuickMatch [User:%s]: Created new match %s", userId, matchId)
	resp, _ := json.Marshal(QuickMatchResponse{MatchID: matchId, IsNew: true})
	return string(resp), nil
}
