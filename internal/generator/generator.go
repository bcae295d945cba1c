package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/princekumarofficial/media-service/internal/types/media"
)

// Genres is the vocabulary random media draw from
var Genres = []string{"Action", "Comedy", "Drama", "Fantasy", "Horror"}

const genresPerMedia = 3

var (
	adjectives = []string{"Silent", "Crimson", "Lost", "Electric", "Hidden", "Broken", "Golden", "Midnight"}
	nouns      = []string{"Harbor", "Empire", "Signal", "Garden", "Voyage", "Machine", "River", "Kingdom"}
)

// Generator synthesizes demo media entries
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator seeded from the runtime source
func New() *Generator {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Media returns one unsaved random media entry
func (g *Generator) Media() media.Media {
	g.mu.Lock()
	defer g.mu.Unlock()

	adjective := adjectives[g.rng.IntN(len(adjectives))]
	noun := nouns[g.rng.IntN(len(nouns))]
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	genres := make([]string, genresPerMedia)
	for i := range genres {
		genres[i] = Genres[g.rng.IntN(len(Genres))]
	}

	mediaType := media.TypeMovie
	if g.rng.IntN(2) == 1 {
		mediaType = media.TypeShow
	}

	return media.Media{
		Title:       fmt.Sprintf("%s %s %s", adjective, noun, suffix),
		Description: fmt.Sprintf("A randomly generated %s about a %s %s.", strings.ToLower(string(mediaType)), strings.ToLower(adjective), strings.ToLower(noun)),
		Genres:      genres,
		Rating:      g.rng.Float64() * 5,
		Status:      media.StatusPlanToWatch,
		MediaType:   mediaType,
	}
}
