package testhelpers

import "fmt"

// ScriptedPrompter answers prompts from fixed queues and records the
// questions asked.
type ScriptedPrompter struct {
	Texts     []string
	Confirms  []bool
	Passwords []string
	Asked     []string
}

// Text implements tui.Prompter
func (p *ScriptedPrompter) Text(prompt, _ string) (string, error) {
	p.Asked = append(p.Asked, prompt)
	if len(p.Texts) == 0 {
		return "", fmt.Errorf("unexpected prompt %q", prompt)
	}
	v := p.Texts[0]
	p.Texts = p.Texts[1:]
	return v, nil
}

// Confirm implements tui.Prompter
func (p *ScriptedPrompter) Confirm(prompt string, _ bool) (bool, error) {
	p.Asked = append(p.Asked, prompt)
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm %q", prompt)
	}
	v := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return v, nil
}

// Password implements tui.Prompter
func (p *ScriptedPrompter) Password(prompt string) (string, error) {
	p.Asked = append(p.Asked, prompt)
	if len(p.Passwords) == 0 {
		return "", fmt.Errorf("unexpected password prompt %q", prompt)
	}
	v := p.Passwords[0]
	p.Passwords = p.Passwords[1:]
	return v, nil
}
