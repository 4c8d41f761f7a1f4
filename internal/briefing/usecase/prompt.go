package usecase

import "fmt"

const dailyPrompt = `Create a morning briefing from my recent notes and tasks.
Cover pending follow-ups, upcoming deadlines, project status and what to focus on today.
Answer in markdown, in the same language as the notes.

Recent notes:
%s
Tasks:
%s`

const monthlyPrompt = `Summarize this month of daily notes and the current task status.
Cover key events, achievements, patterns, next steps and areas needing attention.
Answer in markdown, in the same language as the notes.

Daily notes:
%s
Tasks:
%s`

const organizePrompt = "Organize this text:\n%s"

const noTasks = "No task data available.\n"

func buildDailyPrompt(notes, tasks string) string {
	return fmt.Sprintf(dailyPrompt, notes, orNoTasks(tasks))
}

func buildMonthlyPrompt(notes, tasks string) string {
	return fmt.Sprintf(monthlyPrompt, notes, orNoTasks(tasks))
}

func buildOrganizePrompt(content string) string {
	return fmt.Sprintf(organizePrompt, content)
}

func orNoTasks(tasks string) string {
	if tasks == "" {
		return noTasks
	}
	return tasks
}
