package app

// MinPlayersToStartGame is the number of occupied seats required before a
// match can begin. Cinch is a fixed-partnership game, so every seat must be
// filled.
const MinPlayersToStartGame = 4
