// meta/meta.go
package meta

// TrainGames defines the number of games played while learning.
const TrainGames = 100000

// EvalGames defines the number of greedy games averaged after training.
const EvalGames = 5000

// Alpha defines the learning rate of the bootstrapped update.
const Alpha = 0.5

// Gamma defines the discount factor.
const Gamma = 0.9

// Epsilon defines the exploration probability during training.
const Epsilon = 0.05

// TableCapacity is the number of value table rows preallocated: every
// discretized state of the standard court plus one.
const TableCapacity = 12*12*2*3*12 + 1

// MissPenalty is the value of a state where the ball already passed the paddle.
const MissPenalty = -1.0

// LogEvery defines how often session progress is logged, in games.
const LogEvery = 10000

// Seed defines the default random seed.
const Seed = 1337
