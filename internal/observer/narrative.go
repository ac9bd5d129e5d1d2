package observer

import "go.uber.org/zap"

// NarrativeLogger renders match lifecycle events as structured zap log
// lines, in the engine's emoji-prefixed narration style.
type NarrativeLogger struct {
	logger *zap.Logger
}

// NewNarrativeLogger builds a narrative logger writing through logger.
func NewNarrativeLogger(logger *zap.Logger) *NarrativeLogger {
	return &NarrativeLogger{logger: logger}
}

func (n *NarrativeLogger) OnMatchStarted(e MatchStartedEvent) {
	n.logger.Info("🎬 match started", zap.String("match_id", e.MatchID), zap.Strings("players", e.PlayerIDs), zap.Int64("seed", e.Seed))
}

func (n *NarrativeLogger) OnRoundStarted(e RoundStartedEvent) {
	n.logger.Info("📆 round started", zap.String("match_id", e.MatchID), zap.Int("round", e.Round), zap.String("goal", e.GoalKind))
}

func (n *NarrativeLogger) OnTurnStarted(e TurnStartedEvent) {
	n.logger.Debug("▶️ turn started", zap.String("match_id", e.MatchID), zap.Int("round", e.Round), zap.String("player", e.PlayerID))
}

func (n *NarrativeLogger) OnTurnEnded(e TurnEndedEvent) {
	n.logger.Debug("⏹️ turn ended", zap.String("match_id", e.MatchID), zap.String("player", e.PlayerID), zap.String("action", e.ActionKind), zap.Bool("bonus_applied", e.BonusApplied))
}

func (n *NarrativeLogger) OnRoundEnded(e RoundEndedEvent) {
	n.logger.Info("🏁 round ended", zap.String("match_id", e.MatchID), zap.Int("round", e.Round), zap.Any("points", e.GoalPoints))
}

func (n *NarrativeLogger) OnPlayerForfeited(e PlayerForfeitedEvent) {
	n.logger.Warn("🚫 player forfeited", zap.String("match_id", e.MatchID), zap.String("player", e.PlayerID), zap.String("reason", e.Reason), zap.Int("remaining", e.RemainingPlayers))
}

func (n *NarrativeLogger) OnMatchEnded(e MatchEndedEvent) {
	n.logger.Info("🏆 match ended", zap.String("match_id", e.MatchID), zap.Any("scores", e.FinalScores), zap.String("winner", e.WinnerID))
}
