package mood

import (
	"slices"
	"strings"
)

// CustomEmoji is shown for entries in the Custom category.
const CustomEmoji = "✨"

// Quote is an attributed line shown alongside a mood.
type Quote struct {
	Text   string
	Author string
}

// Track is a music suggestion for a mood.
type Track struct {
	Title       string
	Artist      string
	Genre       string
	Description string
}

// Profile describes how a category is presented.
type Profile struct {
	Category Category
	Emoji    string
	Name     string
	// Color is a hex colour consumed by the terminal renderer.
	Color    string
	Keywords []string
	Quotes   []Quote
	Tracks   []Track
}

// DefaultLabel is the canonical keyword used when an entry has no label of its own.
func (p Profile) DefaultLabel() string {
	if len(p.Keywords) == 0 {
		return p.Name
	}
	return p.Keywords[0]
}

// Lookup returns the profile for c. The returned slices are copies, so callers
// cannot modify the catalogue.
func Lookup(c Category) Profile {
	if !c.Valid() {
		return Profile{Category: c, Emoji: CustomEmoji, Name: c.String()}
	}
	p := profiles[c]
	p.Keywords = slices.Clone(p.Keywords)
	p.Quotes = slices.Clone(p.Quotes)
	p.Tracks = slices.Clone(p.Tracks)
	return p
}

// Keywords returns the keywords for an entry. Custom entries use their own
// label as the only keyword.
func Keywords(c Category, label string) []string {
	if c == Custom {
		if label == "" {
			return nil
		}
		return []string{strings.ToLower(strings.TrimSpace(label))}
	}
	return Lookup(c).Keywords
}

var profiles = [...]Profile{
	Happy: {
		Category: Happy,
		Emoji:    "😊",
		Name:     "Happy",
		Color:    "#F5B700",
		Keywords: []string{"joyful", "cheerful", "bright", "optimistic", "uplifted", "delighted"},
		Quotes: []Quote{
			{Text: "Happiness is not something readymade. It comes from your own actions.", Author: "Dalai Lama"},
			{Text: "The sun is a daily reminder that we too can rise again from the darkness."},
			{Text: "Joy is the simplest form of gratitude.", Author: "Karl Barth"},
		},
		Tracks: []Track{
			{Title: "Good Vibes", Artist: "Various Artists", Genre: "Pop", Description: "Perfect for happy moments"},
			{Title: "Sunny Day", Artist: "Indie Collective", Genre: "Indie Pop", Description: "Uplifting and bright"},
			{Title: "Feel Good Hits", Artist: "Compilation", Genre: "Feel Good", Description: "Keeps the smile going"},
		},
	},
	Calm: {
		Category: Calm,
		Emoji:    "😌",
		Name:     "Calm",
		Color:    "#4FA3D1",
		Keywords: []string{"serene", "peaceful", "tranquil", "relaxed", "centered", "zen"},
		Quotes: []Quote{
			{Text: "In the midst of movement and chaos, keep stillness inside of you.", Author: "Deepak Chopra"},
			{Text: "Peace comes from within. Do not seek it without.", Author: "Buddha"},
			{Text: "Breathe in peace, breathe out stress."},
		},
		Tracks: []Track{
			{Title: "Ambient Meditation", Artist: "Nature Sounds", Genre: "Ambient", Description: "Soothing and tranquil"},
			{Title: "Ocean Waves", Artist: "Relaxation Masters", Genre: "Nature", Description: "Slow and steady"},
			{Title: "Gentle Piano", Artist: "Classical Mix", Genre: "Classical", Description: "Perfect for relaxation"},
		},
	},
	Energetic: {
		Category: Energetic,
		Emoji:    "⚡",
		Name:     "Energetic",
		Color:    "#E8453C",
		Keywords: []string{"dynamic", "vibrant", "powerful", "motivated", "pumped", "electric"},
		Quotes: []Quote{
			{Text: "Energy and persistence conquer all things.", Author: "Benjamin Franklin"},
			{Text: "The energy of the mind is the essence of life.", Author: "Aristotle"},
			{Text: "Life is 10% what happens to you and 90% how you react to it."},
		},
		Tracks: []Track{
			{Title: "Workout Beats", Artist: "Electronic Mix", Genre: "Electronic", Description: "Pumps you up"},
			{Title: "Rock Anthems", Artist: "Classic Rock", Genre: "Rock", Description: "Gets you moving"},
			{Title: "Dance Floor", Artist: "DJ Mix", Genre: "Dance", Description: "Keeps the tempo high"},
		},
	},
	Melancholy: {
		Category: Melancholy,
		Emoji:    "💭",
		Name:     "Melancholy",
		Color:    "#7B6CC4",
		Keywords: []string{"contemplative", "pensive", "reflective", "nostalgic", "wistful", "introspective"},
		Quotes: []Quote{
			{Text: "The cure for anything is salt water: sweat, tears or the sea.", Author: "Isak Dinesen"},
			{Text: "The word 'happiness' would lose its meaning if it were not balanced by sadness.", Author: "Carl Jung"},
			{Text: "Sometimes you need to sit lonely on the floor in a quiet room in order to hear your own voice."},
		},
		Tracks: []Track{
			{Title: "Rainy Day Blues", Artist: "Jazz Ensemble", Genre: "Jazz", Description: "For reflective moments"},
			{Title: "Indie Folk Sessions", Artist: "Folk Artists", Genre: "Folk", Description: "Beautifully sad"},
			{Title: "Contemplative Piano", Artist: "Solo Piano", Genre: "Classical", Description: "Quiet and thoughtful"},
		},
	},
	Excited: {
		Category: Excited,
		Emoji:    "🎉",
		Name:     "Excited",
		Color:    "#D94FA8",
		Keywords: []string{"thrilled", "enthusiastic", "elated", "exhilarated", "animated", "ecstatic"},
		Quotes: []Quote{
			{Text: "Life is either a daring adventure or nothing at all.", Author: "Helen Keller"},
			{Text: "Dream big and dare to fail.", Author: "Norman Vaughan"},
			{Text: "Today is the first day of the rest of your life."},
		},
		Tracks: []Track{
			{Title: "Party Hits", Artist: "Dance Mix", Genre: "Pop", Description: "Perfect for excited vibes"},
			{Title: "Celebration Songs", Artist: "Various Artists", Genre: "Pop Rock", Description: "Pure excitement"},
			{Title: "High Energy", Artist: "Electronic", Genre: "EDM", Description: "Never sits still"},
		},
	},
	Peaceful: {
		Category: Peaceful,
		Emoji:    "🌿",
		Name:     "Peaceful",
		Color:    "#3FAE6A",
		Keywords: []string{"harmonious", "balanced", "grounded", "still", "mindful", "content"},
		Quotes: []Quote{
			{Text: "Adopt the pace of nature: her secret is patience.", Author: "Ralph Waldo Emerson"},
			{Text: "The present moment is the only time over which we have dominion.", Author: "Thich Nhat Hanh"},
			{Text: "In every walk with nature, one receives far more than they seek.", Author: "John Muir"},
		},
		Tracks: []Track{
			{Title: "Forest Sounds", Artist: "Nature Collection", Genre: "Ambient", Description: "Connect with nature"},
			{Title: "Meditation Bells", Artist: "Spiritual Music", Genre: "World", Description: "Harmonious and balanced"},
			{Title: "Acoustic Garden", Artist: "Guitar Relaxation", Genre: "Acoustic", Description: "Warm and unhurried"},
		},
	},
	Sad: {
		Category: Sad,
		Emoji:    "😢",
		Name:     "Sad",
		Color:    "#5B7DB1",
		Keywords: []string{"sorrowful", "tearful", "heartbroken", "emotional", "vulnerable", "healing"},
		Quotes: []Quote{
			{Text: "The way sadness works is one of the strange riddles of the world.", Author: "Lemony Snicket"},
			{Text: "Tears are words that need to be written.", Author: "Paulo Coelho"},
			{Text: "It's okay to not be okay. Just don't give up."},
		},
		Tracks: []Track{
			{Title: "Healing Hearts", Artist: "Emotional Ballads", Genre: "Soul", Description: "For when you need to feel"},
			{Title: "Gentle Rain", Artist: "Comfort Songs", Genre: "Acoustic", Description: "Soothing melancholy"},
		},
	},
	Anxious: {
		Category: Anxious,
		Emoji:    "😰",
		Name:     "Anxious",
		Color:    "#E07B39",
		Keywords: []string{"worried", "nervous", "restless", "overwhelmed", "tense", "uncertain"},
		Quotes: []Quote{
			{Text: "You are braver than you believe, stronger than you seem, and smarter than you think.", Author: "A.A. Milne"},
			{Text: "Anxiety is the dizziness of freedom.", Author: "Søren Kierkegaard"},
			{Text: "Nothing can bring you peace but yourself.", Author: "Ralph Waldo Emerson"},
		},
		Tracks: []Track{
			{Title: "Breathe Easy", Artist: "Calming Collective", Genre: "Ambient", Description: "For anxious moments"},
			{Title: "Safe Space", Artist: "Anxiety Relief", Genre: "Instrumental", Description: "Grounding sounds"},
		},
	},
	Tired: {
		Category: Tired,
		Emoji:    "😴",
		Name:     "Tired",
		Color:    "#8A8FA3",
		Keywords: []string{"exhausted", "weary", "drained", "sleepy", "lethargic", "spent"},
		Quotes: []Quote{
			{Text: "Rest when you're weary. Refresh and renew yourself.", Author: "Ralph Marston"},
			{Text: "Take rest; a field that has rested gives a bountiful crop.", Author: "Ovid"},
			{Text: "Sleep is the best meditation.", Author: "Dalai Lama"},
		},
		Tracks: []Track{
			{Title: "Sleepy Sounds", Artist: "Dreamland", Genre: "Lullaby", Description: "Perfect for rest"},
			{Title: "Gentle Waves", Artist: "Sleep Aid", Genre: "Nature", Description: "Drift away peacefully"},
		},
	},
	Custom: {
		Category: Custom,
		Emoji:    CustomEmoji,
		Name:     "Custom",
		Color:    "#B388EB",
		Keywords: []string{"unique", "personal", "individual", "special", "authentic", "original"},
		Quotes: []Quote{
			{Text: "Your feelings are valid and important."},
			{Text: "Every emotion has its place and purpose."},
			{Text: "You are the author of your own story."},
		},
		Tracks: []Track{
			{Title: "Your Vibe", Artist: "Personal Mix", Genre: "Custom", Description: "Uniquely yours"},
			{Title: "Individual Sound", Artist: "You", Genre: "Personal", Description: "Matches your energy"},
		},
	},
}

// Fails to compile when a category is added without a profile.
var _ = [1]struct{}{}[len(profiles)-int(categoryCount)]
