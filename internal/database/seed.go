package database

import (
	"context"

	"github.com/loopcinemas/loop-api/internal/logger"
	"github.com/loopcinemas/loop-api/internal/model"
	"github.com/loopcinemas/loop-api/internal/repository"
)

// seedMovies is the initial catalogue inserted into an empty database.
var seedMovies = []model.Movie{
	{
		MovieID:       "tt1234567",
		Title:         "Oppenheimer",
		Year:          "2023",
		ContentRating: "R",
		PosterURL:     "/posters/tt1234567.jpg",
		Plot:          "The story of American scientist, J. Robert Oppenheimer, and his role in the development of the atomic bomb.",
		Genres:        []string{"Biography", "Drama", "History"},
	},
	{
		MovieID:       "tt1234568",
		Title:         "Spider-Man: Across the Spider-Verse",
		Year:          "2023",
		ContentRating: "PG",
		PosterURL:     "/posters/tt1234568.jpg",
		Plot:          "Miles Morales catapults across the Multiverse, where he encounters a team of Spider-People charged with protecting its very existence. When the heroes clash on how to handle a new threat, Miles must redefine what it means to be a hero.",
		Genres:        []string{"Animation", "Action", "Adventure"},
	},
	{
		MovieID:       "tt1234569",
		Title:         "Mission: Impossible - Dead Reckoning Part One",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234569.jpg",
		Plot:          "Ethan Hunt and his IMF team must track down a dangerous weapon before it falls into the wrong hands.",
		Genres:        []string{"Action", "Adventure", "Thriller"},
	},
	{
		MovieID:       "tt1234570",
		Title:         "John Wick: Chapter 4",
		Year:          "2023",
		ContentRating: "R",
		PosterURL:     "/posters/tt1234570.jpg",
		Plot:          "John Wick uncovers a path to defeating The High Table. But before he can earn his freedom, Wick must face off against a new enemy with powerful alliances across the globe and forces that turn old friends into foes.",
		Genres:        []string{"Action", "Crime", "Thriller"},
	},
	{
		MovieID:       "tt1234572",
		Title:         "Dune: Part Two",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234572.jpg",
		Plot:          "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
		Genres:        []string{"Action", "Adventure", "Drama"},
	},
	{
		MovieID:       "tt1234573",
		Title:         "A Haunting in Venice",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234573.jpg",
		Plot:          "In post-World War II Venice, Poirot, now retired and living in his own exile, reluctantly attends a seance. But when one of the guests is murdered, it is up to the former detective to once again uncover the killer.",
		Genres:        []string{"Crime", "Drama", "Horror"},
	},
	{
		MovieID:       "tt1234574",
		Title:         "Indiana Jones and the Dial of Destiny",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234574.jpg",
		Plot:          "Archaeologist Indiana Jones races against time to retrieve a legendary artifact that can change the course of history.",
		Genres:        []string{"Action", "Adventure"},
	},
	{
		MovieID:       "tt1234575",
		Title:         "The Batman",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234575.jpg",
		Plot:          "In his second year of fighting crime, Batman explores the corruption that plagues Gotham City and how it may tie to his own family, while also coming into conflict with a serial killer known as the Riddler.",
		Genres:        []string{"Action", "Crime", "Drama"},
	},
	{
		MovieID:       "tt1234576",
		Title:         "Jurassic World: Dominion",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234576.jpg",
		Plot:          "The sixth and final installment of the Jurassic Park franchise, which follows the aftermath of the events of Jurassic World: Fallen Kingdom, in which dinosaurs have been unleashed on the world.",
		Genres:        []string{"Action", "Adventure", "Sci-Fi"},
	},
	{
		MovieID:       "tt1234578",
		Title:         "Black Panther: Wakanda Forever",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234578.jpg",
		Plot:          "The sequel to the Academy Award-winning Black Panther, which will continue to explore the incomparable world of Wakanda and all of the rich and varied characters introduced in the first film.",
		Genres:        []string{"Action", "Adventure", "Sci-Fi"},
	},
	{
		MovieID:       "tt1234579",
		Title:         "The Flash",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234579.jpg",
		Plot:          "Barry Allen, aka The Flash, travels back in time to prevent his mother's murder, which brings unintended consequences to his timeline.",
		Genres:        []string{"Action", "Adventure", "Fantasy"},
	},
	{
		MovieID:       "tt1234580",
		Title:         "Fantastic Beasts and Where to Find Them: The Secrets of Dumbledore",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234580.jpg",
		Plot:          "The third installment of the Fantastic Beasts series, which follows the adventures of Newt Scamander and his friends in the wizarding world of the early 20th century.",
		Genres:        []string{"Adventure", "Family", "Fantasy"},
	},
	{
		MovieID:       "tt1630029",
		Title:         "Avatar: The Way of Water",
		Year:          "2022",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1630029.jpg",
		Plot:          "Jake Sully lives with his newfound family formed on the extrasolar moon Pandora. Once a familiar threat returns to finish what was previously started, Jake must work with Neytiri and the army of the Na'vi race to protect their home.",
		Genres:        []string{"Action", "Adventure", "Fantasy", "Sci-Fi"},
	},
	{
		MovieID:       "tt1234583",
		Title:         "The Matrix Resurrections",
		Year:          "2021",
		ContentRating: "R",
		PosterURL:     "/posters/tt1234583.jpg",
		Plot:          "Neo and Trinity return to the world of the Matrix, where they encounter familiar and new faces, as well as a dangerous new threat that could destroy everything they fought for.",
		Genres:        []string{"Action", "Sci-Fi"},
	},
	{
		MovieID:       "tt1234585",
		Title:         "Guardians of the Galaxy Vol. 3",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1234585.jpg",
		Plot:          "The third and final installment of the Guardians of the Galaxy trilogy, which follows the misfit team of heroes as they face new challenges and enemies in the cosmic realm.",
		Genres:        []string{"Action", "Adventure", "Comedy", "Sci-Fi"},
	},
	{
		MovieID:       "tt10648342",
		Title:         "Thor: Love and Thunder",
		Year:          "2022",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt10648342.jpg",
		Plot:          "Thor tries to find inner peace, but must return to action and recruit Valkyrie, Korg, and Jane Foster - who is now the Mighty Thor - to stop Gorr the God Butcher from eliminating all gods.",
		Genres:        []string{"Action", "Adventure", "Comedy"},
	},
	{
		MovieID:       "tt12362592",
		Title:         "Barbie",
		Year:          "2023",
		ContentRating: "PG",
		PosterURL:     "/posters/tt12362592.jpg",
		Plot:          "Barbie is a fashion doll who gets expelled from Barbieland for not being perfect enough. She goes on an adventure in the real world, where she discovers that being yourself is the most important thing.",
		Genres:        []string{"Comedy", "Family", "Fantasy"},
	},
	{
		MovieID:       "tt14534054",
		Title:         "Elemental",
		Year:          "2023",
		ContentRating: "PG",
		PosterURL:     "/posters/tt14534054.jpg",
		Plot:          "Set in a world where fire-, water-, land- and air-residents live together, Elemental follows the friendship between a fiery young woman named Ember and a go-with-the-flow guy named Wade.",
		Genres:        []string{"Adventure", "Comedy", "Fantasy"},
	},
	{
		MovieID:       "tt2798920",
		Title:         "Transformers: Rise of the Beasts",
		Year:          "2023",
		ContentRating: "R",
		PosterURL:     "/posters/tt2798920.jpg",
		Plot:          "During the '90s, a new faction of Transformers - the Maximals - join the Autobots as allies in the battle for Earth.",
		Genres:        []string{"Action", "Adventure", "Sci-Fi"},
	},
	{
		MovieID:       "tt6718170",
		Title:         "The Super Mario Bros. Movie",
		Year:          "2023",
		ContentRating: "PG",
		PosterURL:     "/posters/tt6718170.jpg",
		Plot:          "A plumber named Mario travels through an underground labyrinth with his brother, Luigi, trying to save a captured princess.",
		Genres:        []string{"Animation", "Adventure", "Comedy"},
	},
	{
		MovieID:       "tt1745960",
		Title:         "Top Gun: Maverick",
		Year:          "2022",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt1745960.jpg",
		Plot:          "After thirty years, Maverick is still pushing the envelope as a top naval aviator, but must confront ghosts of his past when he leads TOP GUN's elite graduates on a mission that demands the ultimate sacrifice from those chosen to fly it.",
		Genres:        []string{"Action", "Drama"},
	},
	{
		MovieID:       "tt14230388",
		Title:         "Asteroid City",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt14230388.jpg",
		Plot:          "Following a writer on his world famous fictional play about a grieving father who travels with his tech-obsessed family to small rural Asteroid City to compete in a junior stargazing event, only to have his world view disrupted forever.",
		Genres:        []string{"Comedy", "Drama", "Romance"},
	},
	{
		MovieID:       "tt10954600",
		Title:         "Ant-Man and the Wasp: Quantumania",
		Year:          "2023",
		ContentRating: "PG-13",
		PosterURL:     "/posters/tt10954600.jpg",
		Plot:          "When Scott Lang and Hope van Dyne, along with Hope's parents, Hank Pym and Janet van Dyne, and Scott's daughter, Cassie, are accidentally sent to the Quantum Realm, they soon find themselves exploring the Realm, interacting with strange new creatures and facing off against Kang the Conqueror.",
		Genres:        []string{"Action", "Adventure", "Comedy"},
	},
}

// SeedMovies inserts the fixture catalogue when the movies table is
// empty. Reruns against a populated database are a no-op.
func SeedMovies(ctx context.Context, movies *repository.MovieRepo) error {
	n, err := movies.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, m := range seedMovies {
		if err := movies.Insert(ctx, m); err != nil {
			return err
		}
	}
	lg := logger.Get()
	lg.Info().Int("movies", len(seedMovies)).Msg("seeded movie catalogue")
	return nil
}
