package seed

import "crossbeamseed/model"

const (
	defaultBio      = "Just a local guy into cars and projects."
	defaultLocation = "Valrico, FL"
)

// DefaultProfiles is the fixed list inserted by seed_profiles.
var DefaultProfiles = []model.ProfileRecord{
	{ID: "bfceac8f-c32d-44b5-8b4e-643e7dbb5478", Email: "brian.james@email.com", Bio: defaultBio, Location: defaultLocation, Username: "brian.james"},
	{ID: "0f377eeb-e20a-4c5c-a159-6e206d17b2c6", Email: "brandon.foster@email.com", Bio: defaultBio, Location: defaultLocation, Username: "brandon.foster"},
	{ID: "2cce85c3-972c-4b0c-8d13-0e649bb7881c", Email: "chris.davis@email.com", Bio: defaultBio, Location: defaultLocation, Username: "chris.davis"},
	{ID: "4e5adda1-71e6-4df0-a260-9722e85da43b", Email: "mike.smith@email.com", Bio: defaultBio, Location: defaultLocation, Username: "mike.smith"},
	{ID: "f84a5302-e7a8-48aa-b10a-822085049151", Email: "zach.hill@email.com", Bio: defaultBio, Location: defaultLocation, Username: "zach.hill"},
	{ID: "6e35caa5-0f0d-4a57-bd56-20511439ec26", Email: "josh.johnson@email.com", Bio: defaultBio, Location: defaultLocation, Username: "josh.johnson"},
	{ID: "81ef18ef-cbe9-4d5f-9254-5c30bbca9544", Email: "kyle.evans@email.com", Bio: defaultBio, Location: defaultLocation, Username: "kyle.evans"},
	{ID: "7db92f91-956e-47f1-82d2-8c91b13a0a82", Email: "kevin.anderson@email.com", Bio: defaultBio, Location: defaultLocation, Username: "kevin.anderson"},
	{ID: "83e973b7-e34e-4552-bfdd-0026656beedc", Email: "evan.moore@email.com", Bio: defaultBio, Location: defaultLocation, Username: "evan.moore"},
	{ID: "3dbfa3ee-39fc-44f6-8584-ba98e4f6fcfa", Email: "tony.brown@email.com", Bio: defaultBio, Location: defaultLocation, Username: "tony.brown"},
	{ID: "01b0b21f-9159-4d60-9112-f0ecd5e0a48e", Email: "derek.franklin@email.com", Bio: defaultBio, Location: defaultLocation, Username: "derek.franklin"},
	{ID: "400cee51-56e0-400a-8b55-84c13aff7f2c", Email: "aaron.irwin@email.com", Bio: defaultBio, Location: defaultLocation, Username: "aaron.irwin"},
	{ID: "9100f596-7787-42f8-821f-1aa06395149d", Email: "shawn.garcia@email.com", Bio: defaultBio, Location: defaultLocation, Username: "shawn.garcia"},
	{ID: "c3b9928a-2921-42d8-aa54-bbe0dfb394d2", Email: "dan.lewis@email.com", Bio: defaultBio, Location: defaultLocation, Username: "dan.lewis"},
	{ID: "d7507a27-9fe1-4259-8490-2dfd2b439082", Email: "cody.klein@email.com", Bio: defaultBio, Location: defaultLocation, Username: "cody.klein"},
	{ID: "8c3afdfe-d8df-4349-b950-ecb4a118ed09", Email: "frank.nelson@email.com", Bio: defaultBio, Location: defaultLocation, Username: "frank.nelson"},
	{ID: "3fad4b0e-ac86-4735-9492-86c7c264e99b", Email: "grant.owens@email.com", Bio: defaultBio, Location: defaultLocation, Username: "grant.owens"},
	{ID: "d3266d4d-a943-469d-8ad9-7adad5132d01", Email: "hank.perez@email.com", Bio: defaultBio, Location: defaultLocation, Username: "hank.perez"},
	{ID: "91fca670-e8b5-45b1-8c62-fb19841fe989", Email: "ian.quinn@email.com", Bio: defaultBio, Location: defaultLocation, Username: "ian.quinn"},
	{ID: "f1e586a4-d7c6-4d72-a6e0-51a6e80e537e", Email: "owen.vargas@email.com", Bio: defaultBio, Location: defaultLocation, Username: "owen.vargas"},
	{ID: "ed5a00df-0b60-4923-b883-7a50bf1cb50d", Email: "jake.reed@email.com", Bio: defaultBio, Location: defaultLocation, Username: "jake.reed"},
	{ID: "59ad51e9-cccc-4700-b0ea-3a067ce262fc", Email: "leo.scott@email.com", Bio: defaultBio, Location: defaultLocation, Username: "leo.scott"},
	{ID: "2278b3e5-7008-4f84-b949-29f5da8c8f0f", Email: "paul.walker@email.com", Bio: defaultBio, Location: defaultLocation, Username: "paul.walker"},
	{ID: "824995ce-c2dc-4c9c-a145-06b5fb10f850", Email: "matt.turner@email.com", Bio: defaultBio, Location: defaultLocation, Username: "matt.turner"},
	{ID: "d91e5942-bd9c-464f-9e6c-32f29dc2f7c9", Email: "nate.upton@email.com", Bio: defaultBio, Location: defaultLocation, Username: "nate.upton"},
}
