package tweet

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/convert"
	"github.com/Mpukk3/electricity-twitter-bot/types"
)

// Compose builds the daily post from the two most expensive hours. Returns
// false unless top holds exactly two entries; a partial post is never built.
func Compose(top []types.SpotPrice, now time.Time) (string, bool) {
	if len(top) != 2 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("⚡ Kalleim elekter Eestis täna:\n\n")
	for i, p := range top {
		fmt.Fprintf(&b, "%d. %s - %s s/kWh\n",
			i+1,
			p.Time.Format("15:04"),
			convert.EurPerMWhToCentsPerKWh(p.Price).StringFixed(2))
	}
	fmt.Fprintf(&b, "\n📅 %s", now.Format("02.01.2006"))

	return b.String(), true
}
