package configs

// Auction tunes request handling around the auction.
type Auction struct {
	// MaxReselect is how many more auctions a request may run, excluding
	// the previous winner, after that winner's budget ran out mid-request.
	MaxReselect int `env:"MAX_RESELECT" envDefault:"2"`
}
