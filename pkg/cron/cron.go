package cron

import "github.com/robfig/cron/v3"

type Cron struct {
	*cron.Cron
}

func NewCron() *Cron {
	return &Cron{Cron: cron.New()}
}

func (c *Cron) AddFunc(spec string, cmd func()) error {
	_, err := c.Cron.AddFunc(spec, cmd)
	return err
}

// Validate reports whether spec is accepted by the scheduler.
func Validate(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}

func (c *Cron) Start() {
	c.Cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (c *Cron) Stop() {
	<-c.Cron.Stop().Done()
}
