package tui

// Travel quotes shown in the status bar, rotated on a timer.
var quotes = []string{
	"The world is a book and those who do not travel read only one page.",
	"Travel is the only thing you buy that makes you richer.",
	"Adventure is worthwhile in itself.",
	"Not all those who wander are lost.",
	"Life is short and the world is wide.",
	"To travel is to live.",
	"Collect moments, not things.",
	"Wherever you go, go with all your heart.",
}
