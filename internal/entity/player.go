package entity

type Player string

const (
	PlayerOne Player = "red"
	PlayerTwo Player = "yellow"

	NoPlayer Player = ""
)

// Other - returns the opponent of the player.
func (that Player) Other() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	return string(that)
}

// Scoreboard - number of games won by each player since the engine was created.
type Scoreboard map[Player]int

func NewScoreboard() Scoreboard {
	return Scoreboard{
		PlayerOne: 0,
		PlayerTwo: 0,
	}
}

func (that Scoreboard) AddPoint(player Player) {
	that[player]++
}

// Copy - returns an independent copy safe to hand out to readers.
func (that Scoreboard) Copy() Scoreboard {
	scores := make(Scoreboard, len(that))
	for player, points := range that {
		scores[player] = points
	}
	return scores
}
