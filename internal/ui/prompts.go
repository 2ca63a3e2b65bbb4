package ui

import "github.com/AlecAivazis/survey/v2"

// PromptConfirmation asks a yes/no question, defaulting to no
func PromptConfirmation(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
