package agent

import (
	"errors"

	agentRepo "tripnest/database/repository/agent"
)

// GetDashboard assembles the agent's business view: profile with revenue
// aggregates, their plans, and their most recent bookings.
func (s *DefaultAgentService) GetDashboard(agentID string) (*Dashboard, error) {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, agentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	plans, err := s.Plans.GetByAgent(agent.ID)
	if err != nil {
		return nil, err
	}

	const recentLimit = 20
	bookings, err := s.Bookings.GetByAgent(agent.ID, recentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Agent:          agent,
		Plans:          plans,
		RecentBookings: bookings,
	}, nil
}
