package loop

import (
	"time"

	"github.com/Cyclone1070/weatheragent/internal/provider"
)

const (
	basePrompt = "You are a helpful assistant tasked with getting weather information for a given city. Today is "

	gatheringSuffix = "\n\nYou are in information gathering mode. Make multiple tool calls as needed to collect all necessary information before providing a final response. Do not respond to the user until you have gathered all required data."

	respondingSuffix = "\n\nYou have gathered all necessary information. Provide a comprehensive response to the user."

	dateLayout = "Monday, 2006-01-02"
)

// systemPrompt builds the per-iteration instruction. It is sent with every
// request but never stored in the Conversation.
func systemPrompt(now time.Time, gathering bool) provider.Message {
	content := basePrompt + now.Format(dateLayout)
	if gathering {
		content += gatheringSuffix
	} else {
		content += respondingSuffix
	}
	return provider.SystemMessage(content)
}
