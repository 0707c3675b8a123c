package glm

type Vec2[T Float] [2]T
