package pets

import "context"

// ShelterOf expone el refugio dueño de una mascota.
// Lo usan adoptions y welfare sin depender del Service completo.
func (s *Service) ShelterOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.ShelterID, nil
}
