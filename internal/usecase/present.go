package usecase

import (
	"fmt"

	"leetbot/internal/domain/model"
)

// Embed severity colors by difficulty.
const (
	colorEasy    = 0x2ECC71
	colorMedium  = 0xE67E22
	colorHard    = 0xE74C3C
	colorDefault = 0x3498DB
)

const failureTitle = "There was a problem retrieving the question. Please try again later."

// FailureNotification is the single unit every absent upstream result maps
// to; nothing partial or garbled ever reaches the renderer.
func FailureNotification() model.Notification {
	return model.Notification{
		Title: failureTitle,
		Color: colorDefault,
	}
}

// QuestionNotification maps question metadata to a display unit. Premium
// questions render a reduced title-and-link variant.
func QuestionNotification(info *model.QuestionInfo) model.Notification {
	color := difficultyColor(info.Difficulty)
	title := fmt.Sprintf("%d. %s", info.QuestionID, info.Title)

	if info.Premium {
		return model.Notification{
			Title:       title,
			URL:         info.Link,
			Description: "Premium Question",
			Color:       color,
		}
	}

	n := model.Notification{
		Title:       title,
		URL:         info.Link,
		Description: info.Description,
		Color:       color,
	}

	if info.ExampleOne != "" {
		n.Fields = append(n.Fields, model.NotificationField{Name: "Example 1:", Value: info.ExampleOne})
	}
	if info.FollowUp != "" {
		n.Fields = append(n.Fields, model.NotificationField{Name: "Follow up:", Value: info.FollowUp})
	}
	n.Fields = append(n.Fields, model.NotificationField{Name: "Difficulty:", Value: info.Difficulty, Inline: true})
	if info.QuestionRating > 0 {
		n.Fields = append(n.Fields, model.NotificationField{
			Name:   "Zerotrac Rating:",
			Value:  fmt.Sprintf("||%d||", info.QuestionRating),
			Inline: true,
		})
	}

	n.Footer = fmt.Sprintf("Accepted: %d  |  Submissions: %d  |  Acceptance Rate: %.1f%%",
		info.TotalAccepted, info.TotalSubmission, info.AcRate)

	return n
}

// StatsNotification maps a user's solve record to a display unit.
func StatsNotification(username string, stats *model.UserStats) model.Notification {
	title := username
	if stats.RealName != "" {
		title = fmt.Sprintf("%s (%s)", stats.RealName, username)
	}

	sub := stats.Submissions
	return model.Notification{
		Title: title,
		URL:   "https://leetcode.com/u/" + username,
		Color: colorDefault,
		Fields: []model.NotificationField{
			{Name: "Easy", Value: fmt.Sprintf("%d", sub.Easy), Inline: true},
			{Name: "Medium", Value: fmt.Sprintf("%d", sub.Medium), Inline: true},
			{Name: "Hard", Value: fmt.Sprintf("%d", sub.Hard), Inline: true},
			{Name: "Score", Value: fmt.Sprintf("%d", sub.Score), Inline: true},
		},
	}
}

func difficultyColor(difficulty string) int {
	switch difficulty {
	case "Easy":
		return colorEasy
	case "Medium":
		return colorMedium
	case "Hard":
		return colorHard
	default:
		return colorDefault
	}
}
