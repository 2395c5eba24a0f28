package game

// Avatars is the fixed catalog clients may pick from; the first entry is
// the default for anything unrecognized.
var Avatars = []string{
	"🦊", "🐼", "🐸", "🦄", "🐝", "🐢", "🐧", "🦁", "🐙", "🐨",
	"🐰", "🐯", "🐶", "🐱", "🐭", "🐹", "🐻", "🐷", "🐮", "🐔",
	"🐤", "🦉", "🦋", "🐞", "🐬", "🐳", "🐠", "🦈", "🐲", "🦖",
}

func normalizeAvatar(value string) string {
	for _, a := range Avatars {
		if a == value {
			return value
		}
	}
	return Avatars[0]
}
