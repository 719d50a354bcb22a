package internal

import (
	"fmt"

	"github.com/aykanferhat/kafka-consumer-service/pkg/cron"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

const DefaultStatusReportCron = "@every 1m"

// StatusReporter periodically logs the partition statuses of every listener.
type StatusReporter struct {
	cron      *cron.Cron
	listeners []Listener
}

func NewStatusReporter(spec string, listeners []Listener) (*StatusReporter, error) {
	if len(spec) == 0 {
		spec = DefaultStatusReportCron
	}
	if err := cron.Validate(spec); err != nil {
		return nil, NewErrWithArgs("status report cron is not valid: %s, err: %s", spec, err.Error())
	}
	reporter := &StatusReporter{
		cron:      cron.NewCron(),
		listeners: listeners,
	}
	if err := reporter.cron.AddFunc(spec, reporter.Report); err != nil {
		return nil, err
	}
	return reporter, nil
}

func (r *StatusReporter) Start() {
	r.cron.Start()
}

func (r *StatusReporter) Stop() {
	r.cron.Stop()
}

func (r *StatusReporter) Report() {
	for _, line := range r.lines() {
		log.Infof("%s", line)
	}
}

func (r *StatusReporter) lines() []string {
	lines := make([]string, 0)
	for _, listener := range r.listeners {
		statuses := listener.Statuses()
		if len(statuses) == 0 {
			lines = append(lines, fmt.Sprintf("listener: %s, group: %s, no assigned partition", listener.GetName(), listener.GetGroupID()))
			continue
		}
		for _, status := range statuses {
			lines = append(lines, fmt.Sprintf(
				"listener: %s, group: %s, topic: %s, partition: %d, status: %s, lastConsumedOffset: %d, lastCommittedOffset: %d",
				listener.GetName(), listener.GetGroupID(), status.Topic, status.Partition, status.Status, status.LastConsumedOffset, status.LastCommittedOffset,
			))
		}
	}
	return lines
}
